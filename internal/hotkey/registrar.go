package hotkey

import (
	"sync"

	xhotkey "golang.design/x/hotkey"

	"github.com/ytget/soundboard/internal/logging"
)

// firedBuffer bounds fired notifications waiting for the dispatcher
const firedBuffer = 32

var logger = logging.Zone("soundboard/hotkey")

type registration struct {
	hk   *xhotkey.Hotkey
	done chan struct{}
}

// Global registers accelerators with the operating system
type Global struct {
	mu     sync.Mutex
	active map[string]*registration
	fired  chan string
}

// NewGlobal creates a registrar with nothing registered
func NewGlobal() *Global {
	return &Global{
		active: make(map[string]*registration),
		fired:  make(chan string, firedBuffer),
	}
}

// Fired delivers the normalized accelerator of every key-down
func (g *Global) Fired() <-chan string {
	return g.fired
}

// Register claims accel system-wide. It returns false when the accelerator
// cannot be parsed or is held by another application.
func (g *Global) Register(accel string) bool {
	a, err := Parse(accel)
	if err != nil {
		logger.WithError(err).Warn("register hotkey")
		return false
	}
	name := a.String()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.active[name]; ok {
		return true
	}

	mods, key, err := native(a)
	if err != nil {
		logger.WithError(err).Warn("register hotkey")
		return false
	}
	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		logger.WithError(err).WithField("accelerator", name).Warn("hotkey registration failed")
		return false
	}

	reg := &registration{hk: hk, done: make(chan struct{})}
	g.active[name] = reg
	go g.forward(name, reg)

	logger.WithField("accelerator", name).Debug("hotkey registered")
	return true
}

func (g *Global) forward(name string, reg *registration) {
	keydown := reg.hk.Keydown()
	for {
		select {
		case <-reg.done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			select {
			case g.fired <- name:
			default:
				logger.WithField("accelerator", name).Warn("hotkey dropped, dispatcher busy")
			}
		}
	}
}

// Unregister releases accel if this registrar holds it
func (g *Global) Unregister(accel string) {
	name := Normalize(accel)
	if name == "" {
		return
	}

	g.mu.Lock()
	reg, ok := g.active[name]
	delete(g.active, name)
	g.mu.Unlock()

	if ok {
		g.release(name, reg)
	}
}

// UnregisterAll releases every accelerator held by this registrar
func (g *Global) UnregisterAll() {
	g.mu.Lock()
	active := g.active
	g.active = make(map[string]*registration)
	g.mu.Unlock()

	for name, reg := range active {
		g.release(name, reg)
	}
	logger.WithField("count", len(active)).Debug("released all hotkeys")
}

func (g *Global) release(name string, reg *registration) {
	close(reg.done)
	if err := reg.hk.Unregister(); err != nil {
		logger.WithError(err).WithField("accelerator", name).Debug("unregister hotkey")
	}
}
