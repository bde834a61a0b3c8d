package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/profilechecker/internal/client"
	"github.com/sidereusnuntius/profilechecker/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profilechecker",
	Short: "Look up GitHub accounts by username",
	Long: `Look up a GitHub account by username and show its name, avatar, profile link,
follower count and public repository count.

Settings are read from profilechecker.yaml (or .toml, .json) in the working
directory or $HOME/.config/profilechecker, and from PROFILECHECKER_* variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, tuiCmd, checkCmd)
}

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup reads the configuration, adjusts the log level and builds the GitHub client shared by all commands.
func setup() (config.Configuration, *client.HttpClient, error) {
	cfg, err := config.ReadConfig()
	if err != nil {
		return cfg, nil, err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	c := client.New(&http.Client{Timeout: cfg.RequestTimeout}, cfg.ApiUrl, cfg.UserAgent)
	return cfg, c, nil
}
