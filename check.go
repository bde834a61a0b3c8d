package main

import (
	"fmt"

	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
	"github.com/sidereusnuntius/profilechecker/internal/lookup"
	"github.com/sidereusnuntius/profilechecker/internal/tui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <username>",
	Short: "Look up one account and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, c, err := setup()
	if err != nil {
		return err
	}

	w := lookup.New(c)
	w.SetIdentifier(args[0])
	s := w.PerformLookup(cmd.Context())

	fmt.Fprintln(cmd.OutOrStdout(), tui.Render(s, locale.New(cfg.Language), tui.DefaultStyles()))
	if s.Status != domain.StatusFound {
		return fmt.Errorf("lookup of %q: %s", args[0], s.Status)
	}
	return nil
}
