package model

// Reaction defaults for newly added rows
const (
	DefaultReactionTrigger = "1 Coin"
	DefaultReactionAction  = "Clap"
)

// Reaction is one row of the on-screen reaction guide
type Reaction struct {
	ID        string `json:"id"`
	Trigger   string `json:"trigger"`
	ImagePath string `json:"imagePath,omitempty"`
	Action    string `json:"action"`
	Active    bool   `json:"active"`
}

// NewReaction creates an active reaction with the default labels
func NewReaction(id string) Reaction {
	return Reaction{
		ID:      id,
		Trigger: DefaultReactionTrigger,
		Action:  DefaultReactionAction,
		Active:  true,
	}
}

// HasImage reports whether an image is attached
func (r Reaction) HasImage() bool {
	return r.ImagePath != ""
}

// ActiveReactions returns the active reactions preserving order
func ActiveReactions(reactions []Reaction) []Reaction {
	active := make([]Reaction, 0, len(reactions))
	for _, r := range reactions {
		if r.Active {
			active = append(active, r)
		}
	}
	return active
}
