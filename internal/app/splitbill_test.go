package app

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/friendsplit/internal/calculator"
)

func TestSplitFormSetters(t *testing.T) {
	t.Run("bill must be positive", func(t *testing.T) {
		s := newSplitForm("f")
		for _, v := range []float64{0, -5, math.NaN()} {
			if err := s.SetBill(v); !errors.Is(err, ErrBillNotPositive) {
				t.Errorf("SetBill(%v) err = %v, want ErrBillNotPositive", v, err)
			}
		}
		if s.Bill() != 0 {
			t.Errorf("Bill() = %v after rejected sets, want 0", s.Bill())
		}

		if err := s.SetBill(100); err != nil {
			t.Fatalf("SetBill(100) failed: %v", err)
		}
		if err := s.SetBill(-1); err == nil {
			t.Fatal("SetBill(-1) accepted")
		}
		if s.Bill() != 100 {
			t.Errorf("prior bill not retained: %v", s.Bill())
		}
	})

	t.Run("expense bounded by bill", func(t *testing.T) {
		s := newSplitForm("f")
		if err := s.SetPaidByUser(10); !errors.Is(err, ErrPaidOutOfRange) {
			t.Errorf("SetPaidByUser without bill err = %v", err)
		}
		if err := s.SetPaidByUser(0); err != nil {
			t.Errorf("SetPaidByUser(0) with zero bill failed: %v", err)
		}

		_ = s.SetBill(100)
		if err := s.SetPaidByUser(40); err != nil {
			t.Fatalf("SetPaidByUser(40) failed: %v", err)
		}
		for _, v := range []float64{-1, 100.01, math.NaN()} {
			if err := s.SetPaidByUser(v); !errors.Is(err, ErrPaidOutOfRange) {
				t.Errorf("SetPaidByUser(%v) err = %v", v, err)
			}
		}
		if s.PaidByUser() != 40 {
			t.Errorf("prior expense not retained: %v", s.PaidByUser())
		}
		if err := s.SetPaidByUser(100); err != nil {
			t.Errorf("SetPaidByUser(bill) failed: %v", err)
		}
	})

	t.Run("lowering bill clamps expense", func(t *testing.T) {
		s := newSplitForm("f")
		_ = s.SetBill(100)
		_ = s.SetPaidByUser(80)
		if err := s.SetBill(50); err != nil {
			t.Fatalf("SetBill(50) failed: %v", err)
		}
		if s.PaidByUser() != 50 {
			t.Errorf("PaidByUser() = %v, want clamped 50", s.PaidByUser())
		}
		_ = s.SetBill(70)
		if s.PaidByUser() != 50 {
			t.Errorf("raising bill changed expense: %v", s.PaidByUser())
		}
	})

	t.Run("friend share derived", func(t *testing.T) {
		s := newSplitForm("f")
		if _, ok := s.FriendShare(); ok {
			t.Error("FriendShare ok without bill")
		}
		_ = s.SetBill(100)
		_ = s.SetPaidByUser(40)
		if share, ok := s.FriendShare(); !ok || share != 60 {
			t.Errorf("FriendShare() = %v, %v; want 60, true", share, ok)
		}
		_ = s.SetPaidByUser(25)
		if share, _ := s.FriendShare(); share != 75 {
			t.Errorf("FriendShare() not recomputed: %v", share)
		}
	})

	t.Run("payer values", func(t *testing.T) {
		s := newSplitForm("f")
		if s.Payer() != calculator.PayerUser {
			t.Errorf("default payer = %q", s.Payer())
		}
		if err := s.SetPayer(calculator.PayerFriend); err != nil {
			t.Fatalf("SetPayer failed: %v", err)
		}
		if err := s.SetPayer("both"); !errors.Is(err, ErrUnknownPayer) {
			t.Errorf("SetPayer(both) err = %v", err)
		}
		if s.Payer() != calculator.PayerFriend {
			t.Errorf("payer changed by rejected set: %q", s.Payer())
		}
	})
}

func TestSplitFormInvariantUnderEdits(t *testing.T) {
	s := newSplitForm("f")
	edits := []struct {
		bill bool
		v    float64
	}{
		{true, 100}, {false, 60}, {true, 30}, {false, 45}, {false, -3},
		{true, 0}, {true, 200}, {false, 200}, {true, 1}, {false, 0.5},
		{true, math.NaN()}, {false, math.Inf(1)},
	}
	for i, e := range edits {
		if e.bill {
			_ = s.SetBill(e.v)
		} else {
			_ = s.SetPaidByUser(e.v)
		}
		if !(s.PaidByUser() >= 0 && s.PaidByUser() <= s.Bill()) {
			t.Fatalf("edit %d: invariant broken, bill=%v paid=%v", i, s.Bill(), s.PaidByUser())
		}
	}
}

func TestSplitFormSubmit(t *testing.T) {
	tests := []struct {
		name      string
		bill      float64
		paid      float64
		payer     calculator.Payer
		wantErr   error
		wantNoop  bool
		wantDelta float64
		wantState SplitState
	}{
		{name: "zero bill", payer: calculator.PayerUser, wantErr: ErrBillRequired, wantState: SplitEditing},
		{name: "user pays", bill: 100, paid: 40, payer: calculator.PayerUser, wantDelta: 60, wantState: SplitSubmittedApplied},
		{name: "friend pays", bill: 100, paid: 40, payer: calculator.PayerFriend, wantDelta: -40, wantState: SplitSubmittedApplied},
		{name: "user covers own bill", bill: 100, paid: 100, payer: calculator.PayerUser, wantNoop: true, wantState: SplitSubmittedNoop},
		{name: "friend covers own bill", bill: 100, paid: 0, payer: calculator.PayerFriend, wantNoop: true, wantState: SplitSubmittedNoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSplitForm("f")
			if tt.bill > 0 {
				_ = s.SetBill(tt.bill)
			}
			_ = s.SetPaidByUser(tt.paid)
			_ = s.SetPayer(tt.payer)

			out, err := s.submit(nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("submit() err = %v, want %v", err, tt.wantErr)
			}
			if s.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", s.State(), tt.wantState)
			}
			if err != nil {
				return
			}
			if out.Noop != tt.wantNoop {
				t.Errorf("Noop = %v, want %v", out.Noop, tt.wantNoop)
			}
			if out.Delta != tt.wantDelta {
				t.Errorf("Delta = %v, want %v", out.Delta, tt.wantDelta)
			}
			if out.FriendID != "f" {
				t.Errorf("FriendID = %q", out.FriendID)
			}
		})
	}
}

func TestSplitFormZeroBillIndicator(t *testing.T) {
	s := newSplitForm("f")
	if s.BillInvalid() {
		t.Fatal("indicator visible before submit")
	}
	_, _ = s.submit(nil)
	if !s.BillInvalid() {
		t.Fatal("indicator not shown after zero-bill submit")
	}
	_ = s.SetBill(10)
	if !s.BillInvalid() {
		t.Error("indicator should persist for the session")
	}
}

func TestSplitFormClosedAfterSubmit(t *testing.T) {
	s := newSplitForm("f")
	_ = s.SetBill(10)
	_ = s.SetPaidByUser(5)
	if _, err := s.submit(nil); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := s.SetBill(20); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("SetBill after submit err = %v", err)
	}
	if err := s.SetPaidByUser(1); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("SetPaidByUser after submit err = %v", err)
	}
	if err := s.SetPayer(calculator.PayerFriend); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("SetPayer after submit err = %v", err)
	}
	if _, err := s.submit(nil); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("second submit err = %v", err)
	}

	next := s.reopen()
	if next.State() != SplitEditing || next.Bill() != 10 || next.PaidByUser() != 5 {
		t.Errorf("reopen() = state %v bill %v paid %v", next.State(), next.Bill(), next.PaidByUser())
	}
	if s.State() != SplitSubmittedApplied {
		t.Error("reopen mutated the original session")
	}
}

func TestSplitFormSubmitApplyFailure(t *testing.T) {
	s := newSplitForm("f")
	_ = s.SetBill(10)
	_ = s.SetPaidByUser(4)

	boom := errors.New("boom")
	if _, err := s.submit(func(Outcome) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("submit err = %v, want boom", err)
	}
	if s.State() != SplitEditing {
		t.Errorf("State() = %v after failed apply, want editing", s.State())
	}

	var got Outcome
	out, err := s.submit(func(o Outcome) error { got = o; return nil })
	if err != nil {
		t.Fatalf("retry submit failed: %v", err)
	}
	if got != out || out.Delta != 6 {
		t.Errorf("apply saw %+v, submit returned %+v", got, out)
	}
	if s.State() != SplitSubmittedApplied {
		t.Errorf("State() = %v, want submitted-applied", s.State())
	}
}
