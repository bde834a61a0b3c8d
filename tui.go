package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
	"github.com/sidereusnuntius/profilechecker/internal/lookup"
	"github.com/sidereusnuntius/profilechecker/internal/tui"
	"github.com/spf13/cobra"
)

var logFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Check profiles interactively in the terminal",
	RunE:  runTui,
}

func init() {
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
}

func runTui(cmd *cobra.Command, args []string) error {
	cfg, c, err := setup()
	if err != nil {
		return err
	}

	// Logging to stderr would tear the terminal UI.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "profilechecker")
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: out, NoColor: true})

	model := tui.NewModel(cmd.Context(), lookup.New(c), locale.New(cfg.Language))
	_, err = tea.NewProgram(model).Run()
	return err
}
