package engine

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/navigator/engine/components"
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/navigation"
	"github.com/spaghettifunk/navigator/engine/systems"
)

type Stage uint8

const (
	// Navigator is in an uninitialized state
	NavigatorStageUninitialized Stage = iota
	// Navigator is accepting tracker states
	NavigatorStageRunning
	// Navigator has been shut down
	NavigatorStageShutdown
)

// Navigator owns the systems behind one navigable viewpoint and feeds them
// tracker states.
type Navigator struct {
	mu            sync.Mutex
	currentStage  Stage
	config        *config.Config
	systemManager *systems.SystemManager
	done          chan struct{}
	quitOnce      sync.Once
}

// New creates a Navigator from cfg. A nil cfg uses config.Default().
func New(cfg *config.Config) (*Navigator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if err := core.LogConfigure(cfg.Logging.LogOptions()); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	if !core.EventInitialize() {
		return nil, fmt.Errorf("failed to initialize the event system")
	}

	sm, err := systems.NewSystemManager(cfg)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	n := &Navigator{
		currentStage:  NavigatorStageRunning,
		config:        cfg,
		systemManager: sm,
		done:          make(chan struct{}),
	}
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, n, n.onQuit)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, n, n.onKey)

	vp := sm.ViewpointSystem.GetDefault()
	core.LogInfo("navigator ready: %s viewpoint '%s', mode %s", vp.Projection, vp.Name, sm.NavigationSystem.Mode().Name())
	return n, nil
}

// HandleTrackerState forwards a device sample to the navigation system. It
// can be used directly as a core.TrackerHandler.
func (n *Navigator) HandleTrackerState(state *core.TrackerState) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.currentStage != NavigatorStageRunning {
		return
	}
	n.systemManager.NavigationSystem.HandleTrackerState(state)
}

// Viewpoint returns the navigated viewpoint.
func (n *Navigator) Viewpoint() *components.Viewpoint {
	return n.systemManager.ViewpointSystem.GetDefault()
}

// Mode returns the active navigation mode.
func (n *Navigator) Mode() navigation.NavigationMode {
	return n.systemManager.NavigationSystem.Mode()
}

// History returns the recorded navigation commands, oldest first.
func (n *Navigator) History() []navigation.Command {
	return n.systemManager.CommandSystem.History()
}

// Status is a one line summary of the last committed viewpoint.
func (n *Navigator) Status() string {
	return n.systemManager.StatusReporter.Status()
}

// Systems exposes the underlying systems, mostly for hosts that acquire extra
// viewpoints or obstacles.
func (n *Navigator) Systems() *systems.SystemManager {
	return n.systemManager
}

// Done is closed once an application quit event was fired.
func (n *Navigator) Done() <-chan struct{} {
	return n.done
}

// Reload applies a new configuration. It fails with core.ErrGestureActive while
// a gesture is in progress; the caller may retry later.
func (n *Navigator) Reload(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.systemManager.Reconfigure(n.config, cfg); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if err := core.LogConfigure(cfg.Logging.LogOptions()); err != nil {
		core.LogWarn("reload: logging unchanged: %s", err)
	}
	n.config = cfg
	core.LogInfo("configuration reloaded")
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})
	return nil
}

func (n *Navigator) Shutdown() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.currentStage == NavigatorStageShutdown {
		return nil
	}
	n.currentStage = NavigatorStageShutdown
	n.quitOnce.Do(func() { close(n.done) })

	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, n)
	core.EventUnregister(core.EVENT_CODE_KEY_PRESSED, n)
	if err := n.systemManager.Shutdown(); err != nil {
		return err
	}
	core.LogInfo("navigator shut down")
	return nil
}

func (n *Navigator) onQuit(ctx core.EventContext) bool {
	core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
	n.quitOnce.Do(func() { close(n.done) })
	return true
}

func (n *Navigator) onKey(ctx core.EventContext) bool {
	e, ok := ctx.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	if e.KeyCode == core.KEY_ESCAPE {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		return true
	}
	return false
}
