package model

import "strings"

// Policy governs how a new trigger interacts with sounds already playing.
// Values keep the single-letter encoding used by the persisted store.
type Policy string

const (
	// PolicyExclusive fades out everything else before playing
	PolicyExclusive Policy = "A"

	// PolicyMix plays in parallel with whatever is playing
	PolicyMix Policy = "B"

	// PolicyQueue is declared separately but currently behaves like PolicyMix
	PolicyQueue Policy = "C"
)

// Settings defaults
const (
	DefaultMasterVolume   = 100
	DefaultPolicy         = PolicyExclusive
	DefaultOutputDeviceID = "default"
	DefaultOpacity        = 0.6
)

// String returns the display name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyExclusive:
		return "EXCLUSIVE"
	case PolicyMix:
		return "MIX"
	case PolicyQueue:
		return "QUEUE"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true for one of the declared policies
func (p Policy) IsValid() bool {
	return p == PolicyExclusive || p == PolicyMix || p == PolicyQueue
}

// StopsOthers returns true if triggering a track silences other tracks
func (p Policy) StopsOthers() bool {
	return p == PolicyExclusive
}

// Policies returns the declared policies in display order
func Policies() []Policy {
	return []Policy{PolicyExclusive, PolicyMix, PolicyQueue}
}

// ParsePolicy accepts a stored value ("A"), a display name ("mix") or the
// legacy "cut" label. The second result is false for unknown input.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "exclusive", "cut":
		return PolicyExclusive, true
	case "b", "mix":
		return PolicyMix, true
	case "c", "queue":
		return PolicyQueue, true
	}
	return DefaultPolicy, false
}

// Settings is the process-wide configuration singleton. It is persisted as a
// whole object on every committed change.
type Settings struct {
	MasterVolume   int     `json:"masterVolume"`
	Policy         Policy  `json:"policy"`
	OutputDeviceID string  `json:"outputDeviceId"`
	Opacity        float64 `json:"opacity"`
}

// DefaultSettings returns the settings used when nothing is stored
func DefaultSettings() Settings {
	return Settings{
		MasterVolume:   DefaultMasterVolume,
		Policy:         DefaultPolicy,
		OutputDeviceID: DefaultOutputDeviceID,
		Opacity:        DefaultOpacity,
	}
}

// Normalize clamps values into range and repairs unknown fields
func (s Settings) Normalize() Settings {
	s.MasterVolume = ClampVolume(s.MasterVolume)
	if !s.Policy.IsValid() {
		s.Policy = DefaultPolicy
	}
	if s.OutputDeviceID == "" {
		s.OutputDeviceID = DefaultOutputDeviceID
	}
	if s.Opacity < 0 {
		s.Opacity = 0
	}
	if s.Opacity > 1 {
		s.Opacity = 1
	}
	return s
}

// MasterGain returns the master volume as a 0.0 to 1.0 level
func (s Settings) MasterGain() float64 {
	return float64(ClampVolume(s.MasterVolume)) / MaxVolume
}
