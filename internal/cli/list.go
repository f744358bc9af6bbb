package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/soundboard/internal/output"
)

func NewTracksCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List configured tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(deps.out())

			tracks, err := deps.Store().LoadTracks()
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				formatter.Info("No tracks configured")
				return nil
			}

			formatter.TrackListHeader(len(tracks))
			for _, t := range tracks {
				formatter.TrackListItem(t)
			}
			return nil
		},
	}
}

func NewReactionsCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "reactions",
		Short: "List the reaction guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(deps.out())

			reactions, err := deps.Store().LoadReactions()
			if err != nil {
				return err
			}
			if len(reactions) == 0 {
				formatter.Info("No reactions configured")
				return nil
			}

			formatter.ReactionListHeader(len(reactions))
			for _, r := range reactions {
				formatter.ReactionListItem(r)
			}
			return nil
		},
	}
}

func NewSettingsCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show playback and overlay settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := deps.Store().LoadSettings()
			if err != nil {
				return err
			}
			output.NewFormatter(deps.out()).Settings(settings)
			return nil
		},
	}
}
