package systems

import (
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/spaghettifunk/navigator/engine/navigation"
)

// CollisionSystem vetoes eye movements that pass through an obstacle. The eye
// is treated as a sphere of AvatarRadius, so obstacles are grown by it.
type CollisionSystem struct {
	enabled   bool
	radius    float32
	obstacles []math.Extents3D
}

var _ navigation.CollisionManager = &CollisionSystem{}

func NewCollisionSystem(cfg config.CollisionConfig) *CollisionSystem {
	cs := &CollisionSystem{}
	cs.Configure(cfg)
	return cs
}

// Configure replaces the obstacle set.
func (cs *CollisionSystem) Configure(cfg config.CollisionConfig) {
	cs.enabled = cfg.Enabled
	cs.radius = cfg.AvatarRadius
	cs.obstacles = make([]math.Extents3D, 0, len(cfg.Obstacles))
	for _, o := range cfg.Obstacles {
		box := math.NewExtents3D(math.NewVec3FromSlice(o.Min[:]), math.NewVec3FromSlice(o.Max[:]))
		cs.obstacles = append(cs.obstacles, box.Expand(cfg.AvatarRadius))
	}
}

// AddObstacle registers one more box.
func (cs *CollisionSystem) AddObstacle(box math.Extents3D) {
	cs.obstacles = append(cs.obstacles, box.Expand(cs.radius))
}

// Obstacles returns the grown obstacle boxes.
func (cs *CollisionSystem) Obstacles() []math.Extents3D {
	return cs.obstacles
}

// CheckCollision reports whether the eye path from start to dest crosses an
// obstacle. An obstacle already containing the start eye never blocks, so a
// viewpoint placed inside one can leave it.
func (cs *CollisionSystem) CheckCollision(start, dest math.Mat4) bool {
	if !cs.enabled {
		return false
	}
	from := start.Translation()
	to := dest.Translation()
	for i, box := range cs.obstacles {
		if box.Contains(from) {
			continue
		}
		if box.IntersectsSegment(from, to) {
			core.LogDebug("collision: path %v -> %v hits obstacle %d", from, to, i)
			return true
		}
	}
	return false
}
