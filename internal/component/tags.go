package component

import "relicforge/internal/ecs"

const (
	CTagItem ecs.ComponentType = 10
	CTagGold ecs.ComponentType = 11
)

// TagItem marks an object lying on the floor.
type TagItem struct{}

func (TagItem) Type() ecs.ComponentType { return CTagItem }

// TagGold marks a gold pile; gold piles also carry TagItem.
type TagGold struct{}

func (TagGold) Type() ecs.ComponentType { return CTagGold }
