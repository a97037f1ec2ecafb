package ecs

import "slices"

// World is the entity registry and component store for one floor. A world
// created with a positive capacity refuses new entities once that many are
// alive, the same way a floor's object list fills up.
type World struct {
	nextID     EntityID
	capacity   int
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World with no entity limit.
func NewWorld() *World {
	return NewBoundedWorld(0)
}

// NewBoundedWorld creates an empty World holding at most capacity live
// entities. A capacity of zero or less means unlimited.
func NewBoundedWorld(capacity int) *World {
	return &World{
		nextID:     1,
		capacity:   capacity,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive. It returns
// NilEntity when the world is full.
func (w *World) CreateEntity() EntityID {
	if w.Full() {
		return NilEntity
	}
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Full reports whether a bounded world has no room for another entity.
func (w *World) Full() bool {
	return w.capacity > 0 && len(w.alive) >= w.capacity
}

// Count returns the number of live entities.
func (w *World) Count() int { return len(w.alive) }

// Capacity returns the entity limit, or 0 when unlimited.
func (w *World) Capacity() int { return w.capacity }

// DestroyEntity removes the entity and all its components, freeing its slot.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity. Adding to a dead entity is a no-op.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
