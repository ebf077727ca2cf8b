package systems

import (
	"fmt"

	"github.com/spaghettifunk/navigator/engine/containers"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/spaghettifunk/navigator/engine/navigation"
)

// superseder is implemented by commands that can replace an earlier one.
type superseder interface {
	Supersedes(other navigation.Command) bool
}

// CommandSystem applies navigation commands to viewpoints and keeps a bounded
// history of what was applied.
type CommandSystem struct {
	viewpoints *ViewpointSystem
	history    *containers.RingQueue[navigation.Command]
	// sealed keeps the next command from coalescing with the last one.
	sealed bool
}

var _ navigation.CommandController = &CommandSystem{}

func NewCommandSystem(viewpoints *ViewpointSystem, historySize int) (*CommandSystem, error) {
	if historySize <= 0 {
		err := fmt.Errorf("func NewCommandSystem - historySize must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &CommandSystem{
		viewpoints: viewpoints,
		history:    containers.NewRingQueue[navigation.Command](historySize),
		sealed:     true,
	}, nil
}

// Execute applies cmd. Commands that cannot be applied are logged and dropped.
func (cs *CommandSystem) Execute(cmd navigation.Command) {
	change, ok := cmd.(*navigation.ChangePropertyTransientCommand)
	if !ok {
		core.LogWarn("command %s: unsupported command type %T", cmd.ID(), cmd)
		return
	}
	if err := cs.apply(change); err != nil {
		core.LogError("command %s (%s): %s", cmd.ID(), cmd.Description(), err)
		return
	}
	cs.record(cmd)
}

func (cs *CommandSystem) apply(cmd *navigation.ChangePropertyTransientCommand) error {
	if cmd.PropertySheet != navigation.DefaultEntityProperties {
		return fmt.Errorf("unknown property sheet %q", cmd.PropertySheet)
	}
	vp, err := cs.viewpoints.GetByID(cmd.EntityID)
	if err != nil {
		return err
	}

	switch cmd.PropertyName {
	case navigation.PropertyViewMatrix:
		data, ok := cmd.Value.([16]float32)
		if !ok {
			return fmt.Errorf("%s expects [16]float32, got %T", cmd.PropertyName, cmd.Value)
		}
		vp.SetViewTransform(math.Mat4{Data: data})
	case navigation.PropertyOrthoParams:
		params, ok := cmd.Value.([4]float64)
		if !ok {
			return fmt.Errorf("%s expects [4]float64, got %T", cmd.PropertyName, cmd.Value)
		}
		vp.SetOrthoParams(params[0], params[1], params[2], params[3])
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_ORTHO_PARAMS_CHANGED,
			Data: &core.OrthoParamsEvent{EntityID: vp.ID, Params: params},
		})
	default:
		return fmt.Errorf("unknown property %q", cmd.PropertyName)
	}
	return nil
}

// record appends cmd to the history. A transient command replaces the last
// entry when it changes the same property within the same gesture.
func (cs *CommandSystem) record(cmd navigation.Command) {
	defer func() { cs.sealed = false }()

	if !cs.sealed && cmd.IsTransient() {
		last, err := cs.history.PeekLast()
		if s, ok := cmd.(superseder); ok && err == nil && last.IsTransient() && s.Supersedes(last) {
			_ = cs.history.ReplaceLast(cmd)
			return
		}
	}
	cs.history.Push(cmd)
}

// Seal ends the current gesture: the next command starts a new history entry.
func (cs *CommandSystem) Seal() {
	cs.sealed = true
}

// History returns the recorded commands from oldest to newest.
func (cs *CommandSystem) History() []navigation.Command {
	return cs.history.Items()
}
