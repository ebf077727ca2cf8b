package navigation

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultEntityProperties is the property sheet holding viewpoint state.
	DefaultEntityProperties = "Entity.defaultProperties"

	// PropertyViewMatrix carries a [16]float32 row-major viewpoint transform.
	PropertyViewMatrix = "ViewMatrix"

	// PropertyOrthoParams carries a [4]float64 of left, right, bottom, top.
	PropertyOrthoParams = "OrthoParams"
)

// Command is a unit of work executed by a CommandController.
type Command interface {
	ID() uuid.UUID
	Description() string
	// IsTransient reports whether the command is an in-progress change that
	// later commands of the same gesture supersede.
	IsTransient() bool
}

// ChangePropertyTransientCommand sets one property of an entity during a gesture.
type ChangePropertyTransientCommand struct {
	id            uuid.UUID
	EntityID      uint32
	PropertySheet string
	PropertyName  string
	Value         any
	// OldValue is optional and only used for diffing.
	OldValue any
}

var _ Command = &ChangePropertyTransientCommand{}

func NewChangePropertyTransientCommand(entityID uint32, sheet, name string, value, oldValue any) *ChangePropertyTransientCommand {
	return &ChangePropertyTransientCommand{
		id:            uuid.New(),
		EntityID:      entityID,
		PropertySheet: sheet,
		PropertyName:  name,
		Value:         value,
		OldValue:      oldValue,
	}
}

func (c *ChangePropertyTransientCommand) ID() uuid.UUID {
	return c.id
}

func (c *ChangePropertyTransientCommand) Description() string {
	return fmt.Sprintf("change %s.%s of entity %d", c.PropertySheet, c.PropertyName, c.EntityID)
}

func (c *ChangePropertyTransientCommand) IsTransient() bool {
	return true
}

// Supersedes reports whether c replaces other: both change the same property
// of the same entity.
func (c *ChangePropertyTransientCommand) Supersedes(other Command) bool {
	o, ok := other.(*ChangePropertyTransientCommand)
	if !ok {
		return false
	}
	return o.EntityID == c.EntityID &&
		o.PropertySheet == c.PropertySheet &&
		o.PropertyName == c.PropertyName
}
