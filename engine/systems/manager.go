package systems

import (
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
)

type SystemManager struct {
	ViewpointSystem  *ViewpointSystem
	CommandSystem    *CommandSystem
	CollisionSystem  *CollisionSystem
	StatusReporter   *StatusReporter
	NavigationSystem *NavigationSystem
}

func NewSystemManager(cfg *config.Config) (*SystemManager, error) {
	vs, err := NewViewpointSystem(&ViewpointSystemConfig{
		MaxViewpointCount: 100,
		Default:           cfg.Viewpoint,
	})
	if err != nil {
		return nil, err
	}
	cs, err := NewCommandSystem(vs, cfg.Commands.HistorySize)
	if err != nil {
		return nil, err
	}
	col := NewCollisionSystem(cfg.Collision)
	sr := NewStatusReporter(vs.GetDefault().ID)
	ns := NewNavigationSystem(vs.GetDefault(), cs, col, sr, cfg.Navigation)

	return &SystemManager{
		ViewpointSystem:  vs,
		CommandSystem:    cs,
		CollisionSystem:  col,
		StatusReporter:   sr,
		NavigationSystem: ns,
	}, nil
}

// Reconfigure applies a reloaded configuration between gestures. The default
// viewpoint is only reset when its section changed. The history size is fixed
// at creation.
func (sm *SystemManager) Reconfigure(previous, next *config.Config) error {
	if sm.NavigationSystem.Active() {
		return core.ErrGestureActive
	}
	if previous.Viewpoint != next.Viewpoint {
		if err := sm.ViewpointSystem.ResetDefault(next.Viewpoint); err != nil {
			return err
		}
	}
	sm.CollisionSystem.Configure(next.Collision)
	return sm.NavigationSystem.Reconfigure(next.Navigation)
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.ViewpointSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
