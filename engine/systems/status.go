package systems

import (
	"fmt"

	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/engine/math"
	"github.com/spaghettifunk/navigator/engine/navigation"
)

// StatusReporter broadcasts committed view matrices on the event system.
type StatusReporter struct {
	entityID uint32
	last     math.Mat4
	count    uint64
}

var _ navigation.StatusManager = &StatusReporter{}

func NewStatusReporter(entityID uint32) *StatusReporter {
	return &StatusReporter{
		entityID: entityID,
		last:     math.NewMat4Identity(),
	}
}

func (s *StatusReporter) FireViewMatrixChanged(matrix math.Mat4) {
	s.last = matrix
	s.count++
	core.LogDebug("status: %s", s.Status())
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_VIEW_MATRIX_CHANGED,
		Data: &core.ViewMatrixEvent{EntityID: s.entityID, Matrix: matrix.Data},
	})
}

// Status is a one line summary of the last reported viewpoint.
func (s *StatusReporter) Status() string {
	eye := s.last.Translation()
	return fmt.Sprintf("viewpoint %d eye [%.3f, %.3f, %.3f]", s.entityID, eye.X, eye.Y, eye.Z)
}

// Count is the number of notifications sent.
func (s *StatusReporter) Count() uint64 {
	return s.count
}
