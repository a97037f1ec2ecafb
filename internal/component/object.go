package component

import (
	"relicforge/internal/ecs"
	"relicforge/internal/object"
)

// CObject is the ECS component type for floor objects.
const CObject ecs.ComponentType = 13

// Object wraps a generated item so it can be stored on a floor entity.
// Deleting the entity deletes the item.
type Object struct{ object.Item }

func (Object) Type() ecs.ComponentType { return CObject }
