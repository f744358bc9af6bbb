package overlay

import (
	"context"
	"sync"

	"github.com/ytget/soundboard/internal/model"
)

// Opacity above which the panel gets a blur and a shadow
const effectThreshold = 0.1

// Style is the panel look derived from the overlay opacity
type Style struct {
	Background  float64 // background alpha
	Blur        float64 // backdrop blur radius in pixels, 0 for none
	BorderAlpha float64
	Shadow      bool
}

// StyleFor derives the panel style from opacity
func StyleFor(opacity float64) Style {
	s := Style{
		Background:  opacity,
		BorderAlpha: opacity * 0.2,
	}
	if opacity > effectThreshold {
		s.Blur = opacity * 10
		s.Shadow = true
	}
	return s
}

// View is the overlay-side state. It only changes through Apply.
type View struct {
	mu        sync.RWMutex
	settings  model.Settings
	reactions []model.Reaction
}

// NewView creates a view showing the default settings and no reactions
func NewView() *View {
	return &View{settings: model.DefaultSettings()}
}

// Apply updates the view from a message. It reports whether the message
// carried view state; toggle requests do not.
func (v *View) Apply(msg Message) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch msg.Kind {
	case KindReactionsUpdated:
		v.reactions = append([]model.Reaction(nil), msg.Reactions...)
	case KindSettingsUpdated, KindPreviewSettings:
		v.settings = msg.Settings
	default:
		return false
	}
	return true
}

// Active returns the reactions to render
func (v *View) Active() []model.Reaction {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return model.ActiveReactions(v.reactions)
}

// Settings returns the last received settings
func (v *View) Settings() model.Settings {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.settings
}

// Style returns the panel style for the current opacity
func (v *View) Style() Style {
	return StyleFor(v.Settings().Opacity)
}

// Run applies messages until ctx is done or msgs is closed. onChange is
// called after every applied message.
func (v *View) Run(ctx context.Context, msgs <-chan Message, onChange func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if v.Apply(msg) && onChange != nil {
				onChange()
			}
		}
	}
}
