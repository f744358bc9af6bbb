// Package cli defines the soundboard command line
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/soundboard/internal/config"
	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/version"
)

type Dependencies struct {
	Config *config.Config
	// Store opens the persisted user state
	Store func() *config.Store
	// Run starts the desktop application and blocks until it quits
	Run func(ctx context.Context) error
	Out io.Writer
}

func (d *Dependencies) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "soundboard",
		Short: "Soundboard and reaction overlay for live streams",
		Long:  "Plays short audio clips on global hotkeys or clicks and shows a reaction guide overlay for screen capture.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				deps.Config.LogLevel = logLevel
			}
			logging.Setup(deps.Config.LogLevel, os.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(NewTracksCmd(deps))
	rootCmd.AddCommand(NewReactionsCmd(deps))
	rootCmd.AddCommand(NewSettingsCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
