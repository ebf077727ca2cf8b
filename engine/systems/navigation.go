package systems

import (
	"github.com/spaghettifunk/navigator/engine/components"
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/navigation"
)

// NavigationSystem drives the navigation mode of one viewpoint from tracker
// states. The mode variant follows the viewpoint projection.
type NavigationSystem struct {
	viewpoint *components.Viewpoint
	commands  *CommandSystem
	collision navigation.CollisionManager
	status    navigation.StatusManager
	params    config.NavigationConfig

	mode       *navigation.PanZoomController
	projection components.Projection
}

func NewNavigationSystem(
	viewpoint *components.Viewpoint,
	commands *CommandSystem,
	collision navigation.CollisionManager,
	status navigation.StatusManager,
	params config.NavigationConfig) *NavigationSystem {

	ns := &NavigationSystem{
		viewpoint: viewpoint,
		commands:  commands,
		collision: collision,
		status:    status,
		params:    params,
	}
	ns.rebuild()
	return ns
}

func (ns *NavigationSystem) rebuild() {
	options := []navigation.ControllerOption{
		navigation.WithStatusManager(ns.status),
		navigation.WithParameters(ns.params),
	}
	vp := ns.viewpoint
	if vp.Projection == components.PROJECTION_ORTHOGRAPHIC {
		ns.mode = navigation.NewOrthoPanZoomController(vp, vp, ns.commands, vp.ID, ns.collision, options...)
	} else {
		ns.mode = navigation.NewPanZoomController(vp, ns.commands, vp.ID, ns.collision, options...)
	}
	ns.projection = vp.Projection

	cor := vp.CenterOfRotation.Array()
	ns.mode.SetCenterOfRotation(cor[:])
	core.LogDebug("navigation: %s mode for %s viewpoint '%s'", ns.mode.Name(), vp.Projection, vp.Name)
}

// Mode returns the current navigation mode.
func (ns *NavigationSystem) Mode() navigation.NavigationMode {
	return ns.mode
}

// Active reports whether a gesture is in progress.
func (ns *NavigationSystem) Active() bool {
	return ns.mode.Active()
}

// Reconfigure applies new tuning constants and picks up a projection change
// of the viewpoint. It fails while a gesture is in progress.
func (ns *NavigationSystem) Reconfigure(params config.NavigationConfig) error {
	if ns.mode.Active() {
		return core.ErrGestureActive
	}
	ns.params = params
	ns.rebuild()
	return nil
}

// HandleTrackerState routes one device sample to the navigation mode. A wheel
// sample outside a gesture is a complete gesture of its own.
func (ns *NavigationSystem) HandleTrackerState(state *core.TrackerState) {
	if ns.projection != ns.viewpoint.Projection && !ns.mode.Active() {
		ns.rebuild()
	}

	switch state.ActionType {
	case core.ACTION_PRESS:
		if ns.mode.Active() {
			core.LogDebug("navigation: press during a gesture, ignored")
			return
		}
		ns.mode.Start(state)
	case core.ACTION_DRAG:
		if !ns.mode.Active() {
			return
		}
		ns.mode.Move(state)
	case core.ACTION_RELEASE:
		if !ns.mode.Active() {
			return
		}
		ns.mode.Finish(state)
		ns.commands.Seal()
	case core.ACTION_WHEEL:
		if ns.mode.Active() {
			ns.mode.Move(state)
			return
		}
		ns.mode.Start(state)
		ns.mode.Move(state)
		ns.mode.Finish(state)
		ns.commands.Seal()
	}
}
