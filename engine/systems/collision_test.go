package systems

import (
	"testing"

	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/stretchr/testify/assert"
)

func eyeAt(x, y, z float32) math.Mat4 {
	return math.NewMat4Translation(math.NewVec3(x, y, z))
}

func wallConfig(radius float32) config.CollisionConfig {
	return config.CollisionConfig{
		Enabled:      true,
		AvatarRadius: radius,
		Obstacles: []config.Obstacle{
			{Min: [3]float32{-1, 0, 0}, Max: [3]float32{1, 2, 1}},
		},
	}
}

func TestCollisionDisabled(t *testing.T) {
	cfg := wallConfig(0)
	cfg.Enabled = false
	cs := NewCollisionSystem(cfg)

	assert.False(t, cs.CheckCollision(eyeAt(0, 1, 5), eyeAt(0, 1, -5)))
}

func TestCollisionCrossing(t *testing.T) {
	cs := NewCollisionSystem(wallConfig(0))

	assert.True(t, cs.CheckCollision(eyeAt(0, 1, 5), eyeAt(0, 1, -5)), "through the wall")
	assert.True(t, cs.CheckCollision(eyeAt(0, 1, 5), eyeAt(0, 1, 0.5)), "ending inside")
	assert.False(t, cs.CheckCollision(eyeAt(0, 1, 5), eyeAt(0, 1, 2)), "stopping short")
	assert.False(t, cs.CheckCollision(eyeAt(0, 3, 5), eyeAt(0, 3, -5)), "passing above")
	assert.False(t, cs.CheckCollision(eyeAt(0, 1, 0.5), eyeAt(0, 1, 5)), "leaving from inside")
}

func TestCollisionAvatarRadius(t *testing.T) {
	from, to := eyeAt(1.1, 1, 5), eyeAt(1.1, 1, -5)

	assert.False(t, NewCollisionSystem(wallConfig(0)).CheckCollision(from, to))
	assert.True(t, NewCollisionSystem(wallConfig(0.25)).CheckCollision(from, to))
}

func TestCollisionConfigure(t *testing.T) {
	cs := NewCollisionSystem(config.CollisionConfig{Enabled: true, AvatarRadius: 0.5})
	assert.Empty(t, cs.Obstacles())

	cs.AddObstacle(math.NewExtents3D(math.NewVec3(0, 0, 0), math.NewVec3(1, 1, 1)))
	assert.Equal(t, math.NewVec3(-0.5, -0.5, -0.5), cs.Obstacles()[0].Min)
	assert.True(t, cs.CheckCollision(eyeAt(0.5, 0.5, 5), eyeAt(0.5, 0.5, -5)))

	cs.Configure(wallConfig(0))
	assert.Len(t, cs.Obstacles(), 1)
	assert.Equal(t, math.NewVec3(-1, 0, 0), cs.Obstacles()[0].Min)
}
