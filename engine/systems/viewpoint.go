package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/navigator/engine/components"
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
)

/** @brief The entity id of the default viewpoint. */
const DefaultViewpointID uint32 = 1

type ViewpointSystem struct {
	Config *ViewpointSystemConfig

	mu     sync.Mutex
	lookup map[string]*components.ViewpointLookup
	byID   map[uint32]*components.Viewpoint
	nextID uint32
	// A default, non-registered viewpoint that always exists as a fallback.
	DefaultViewpoint *components.Viewpoint
}

/** @brief The viewpoint system configuration. */
type ViewpointSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of named viewpoints that can be managed by
	 * the system, the default one excluded.
	 */
	MaxViewpointCount uint16
	/** @brief Initial state of the default viewpoint and of every acquired one. */
	Default config.ViewpointConfig
}

/**
 * @brief Initializes the viewpoint system and creates the default viewpoint.
 *
 * @param config The configuration for this system.
 * @return The system, or an error if the configuration is unusable.
 */
func NewViewpointSystem(config *ViewpointSystemConfig) (*ViewpointSystem, error) {
	if config.MaxViewpointCount == 0 {
		err := fmt.Errorf("func NewViewpointSystem - config.MaxViewpointCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	def, err := NewViewpointFromConfig(DefaultViewpointID, config.Default)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	vs := &ViewpointSystem{
		Config:           config,
		lookup:           make(map[string]*components.ViewpointLookup, config.MaxViewpointCount),
		byID:             make(map[uint32]*components.Viewpoint, config.MaxViewpointCount+1),
		nextID:           DefaultViewpointID + 1,
		DefaultViewpoint: def,
	}
	vs.byID[def.ID] = def
	return vs, nil
}

/**
 * @brief Builds a viewpoint from its configuration section. The transform looks
 * from position at look_at; when both coincide it is a plain translation.
 */
func NewViewpointFromConfig(id uint32, cfg config.ViewpointConfig) (*components.Viewpoint, error) {
	projection, err := components.ParseProjection(cfg.Projection)
	if err != nil {
		return nil, fmt.Errorf("viewpoint %q: %w", cfg.Name, err)
	}
	vp := components.NewViewpoint(id, cfg.Name, projection)
	applyViewpointConfig(vp, cfg)
	return vp, nil
}

func applyViewpointConfig(vp *components.Viewpoint, cfg config.ViewpointConfig) {
	position := math.NewVec3FromSlice(cfg.Position[:])
	target := math.NewVec3FromSlice(cfg.LookAt[:])
	up := math.NewVec3FromSlice(cfg.Up[:])
	if up.LengthSquared() == 0 {
		up = math.NewVec3Up()
	}

	transform := math.NewMat4Translation(position)
	direction := target.Sub(position)
	if direction.LengthSquared() > 0 {
		// Looking along the up vector, pick another one.
		d := direction.Normalize().Dot(up.Normalize())
		if 1-d*d < 1e-6 {
			up = math.NewVec3(0, 0, -1)
		}
		transform = math.NewMat4ViewpointLookAt(position, target, up)
	}

	vp.SetViewTransform(transform)
	vp.SetFrustum(math.NewFrustumFromSlice(cfg.Frustum[:]))
	vp.CenterOfRotation = math.NewVec3FromSlice(cfg.CenterOfRotation[:])
}

/**
 * @brief Shuts down the viewpoint system. Every named viewpoint is dropped.
 */
func (vs *ViewpointSystem) Shutdown() error {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.lookup = make(map[string]*components.ViewpointLookup)
	vs.byID = map[uint32]*components.Viewpoint{vs.DefaultViewpoint.ID: vs.DefaultViewpoint}
	return nil
}

/**
 * @brief Acquires a pointer to a viewpoint by name.
 * If one is not found, a new one is created from the default configuration.
 * Internal reference counter is incremented.
 *
 * @param name The name of the viewpoint to acquire.
 * @return A pointer to a viewpoint, or an error if no slot is left.
 */
func (vs *ViewpointSystem) Acquire(name string) (*components.Viewpoint, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if name == vs.DefaultViewpoint.Name {
		return vs.DefaultViewpoint, nil
	}
	entry, ok := vs.lookup[name]
	if !ok {
		if len(vs.lookup) >= int(vs.Config.MaxViewpointCount) {
			err := fmt.Errorf("func ViewpointSystem.Acquire failed to acquire new slot. Adjust viewpoint system config to allow more")
			core.LogError(err.Error())
			return nil, err
		}

		core.LogDebug("Creating new viewpoint named '%s'...", name)
		cfg := vs.Config.Default
		cfg.Name = name
		vp, err := NewViewpointFromConfig(vs.nextID, cfg)
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		vs.nextID++

		entry = &components.ViewpointLookup{Viewpoint: vp}
		vs.lookup[name] = entry
		vs.byID[vp.ID] = vp
	}
	entry.ReferenceCount++
	return entry.Viewpoint, nil
}

/**
 * @brief Releases a viewpoint with the given name. Internal reference
 * counter is decremented. If this reaches 0, the viewpoint is dropped
 * and its id is no longer valid.
 *
 * @param name The name of the viewpoint to release.
 */
func (vs *ViewpointSystem) Release(name string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if name == vs.DefaultViewpoint.Name {
		core.LogDebug("Cannot release default viewpoint. Nothing was done.")
		return
	}
	entry, ok := vs.lookup[name]
	if !ok {
		core.LogWarn("ViewpointSystem.Release failed lookup for '%s'. Nothing was done.", name)
		return
	}
	entry.ReferenceCount--
	if entry.ReferenceCount < 1 {
		delete(vs.byID, entry.Viewpoint.ID)
		delete(vs.lookup, name)
	}
}

/**
 * @brief Gets a pointer to the default viewpoint.
 */
func (vs *ViewpointSystem) GetDefault() *components.Viewpoint {
	return vs.DefaultViewpoint
}

// GetByID resolves the entity id carried by a command.
func (vs *ViewpointSystem) GetByID(id uint32) (*components.Viewpoint, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vp, ok := vs.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", core.ErrViewpointNotFound, id)
	}
	return vp, nil
}

// ResetDefault reapplies a configuration section to the default viewpoint,
// keeping its id. Acquired viewpoints keep their state.
func (vs *ViewpointSystem) ResetDefault(cfg config.ViewpointConfig) error {
	projection, err := components.ParseProjection(cfg.Projection)
	if err != nil {
		core.LogError(err.Error())
		return err
	}

	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.Config.Default = cfg
	vp := vs.DefaultViewpoint
	vp.Name = cfg.Name
	vp.Projection = projection
	applyViewpointConfig(vp, cfg)
	return nil
}
