package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/friendsplit/internal/calculator"
	"github.com/mmynk/friendsplit/internal/models"
	"github.com/mmynk/friendsplit/internal/storage"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List the seed friends and their balances",
	RunE:  runFriends,
}

func init() {
	rootCmd.AddCommand(friendsCmd)
}

func runFriends(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	friends, err := storage.LoadSeed(cfg.App.SeedPath)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBALANCE\tSTANDING")
	for _, f := range friends {
		fmt.Fprintf(tw, "%s\t%s\t%s%s\t%s\n", f.ID, f.Name, models.FormatAmount(f.Balance), cfg.App.Currency, f.Standing())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sum := calculator.Summarize(friends)
	fmt.Printf("\n  Owed to you: %s%s  You owe: %s%s  Even: %d\n",
		models.FormatAmount(sum.OwedToYou), cfg.App.Currency,
		models.FormatAmount(sum.YouOwe), cfg.App.Currency,
		sum.Even)
	return nil
}
