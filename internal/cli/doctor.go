package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/soundboard/internal/hotkey"
	"github.com/ytget/soundboard/internal/output"
	"github.com/ytget/soundboard/internal/platform"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that every track can be played",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(deps.out())

			tracks, err := deps.Store().LoadTracks()
			if err != nil {
				f.SetupCheck("Stored tracks", false, err.Error())
				return nil
			}
			f.SetupCheck("Stored tracks", true, fmt.Sprintf("%d configured", len(tracks)))
			f.SetupCheck("Sample rate", true, fmt.Sprintf("%d Hz", deps.Config.SampleRate))

			ok := true
			seen := make(map[string]string)
			for _, t := range tracks {
				if _, err := os.Stat(t.Path); err != nil {
					f.SetupCheck(t.Name, false, "file missing: "+t.Path)
					ok = false
					continue
				}
				if !platform.IsAudioFile(t.Path) {
					f.SetupCheck(t.Name, false, "not a supported audio file")
					ok = false
					continue
				}
				if t.Hotkey != "" {
					accel := hotkey.Normalize(t.Hotkey)
					if accel == "" {
						f.SetupCheck(t.Name, false, "invalid hotkey "+t.Hotkey)
						ok = false
						continue
					}
					if other, dup := seen[accel]; dup {
						f.SetupCheck(t.Name, false, fmt.Sprintf("hotkey %s also used by %s", accel, other))
						ok = false
						continue
					}
					seen[accel] = t.Name
				}
				f.SetupCheck(t.Name, true, "ok")
			}

			if ok {
				f.Success("All tracks are playable")
			} else {
				f.Warning("Some tracks need attention")
			}
			return nil
		},
	}
}
