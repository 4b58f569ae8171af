package ecs

import "github.com/milk9111/deadzone/ecs/component"

// Kind is the untyped view of a component kind used by queries.
type Kind interface {
	ID() component.ComponentID
}

// World owns entities, component stores, the system order and the per-tick
// event queue. It is the whole mutable game state.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
	events    EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// It reports false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, store := range w.stores {
		store.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for id := 1; id <= len(w.entities.gen); id++ {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// AddComponent stores value under the kind id, replacing any previous value.
func (w *World) AddComponent(e Entity, kind component.ComponentID, value any) error {
	if kind == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	store, ok := w.stores[kind]
	if !ok {
		store = &SparseSet{}
		w.stores[kind] = store
	}
	store.Set(int(e.id()), value)
	return nil
}

// RemoveComponent deletes the component of the given kind from e.
func (w *World) RemoveComponent(e Entity, kind component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.stores[kind].Remove(int(e.id()))
}

// HasComponent reports whether e carries a component of the given kind.
func (w *World) HasComponent(e Entity, kind component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.stores[kind].Has(int(e.id()))
}

// GetComponent returns the raw component value of the given kind.
func (w *World) GetComponent(e Entity, kind component.ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.stores[kind].Get(int(e.id()))
	return v, v != nil
}

// Query returns the live entities carrying every listed kind. Iteration
// starts from the smallest store.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok || store.Len() == 0 {
			return nil
		}
		stores = append(stores, store)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var out []Entity
	for _, id := range smallest.Entities() {
		match := true
		for _, s := range stores {
			if !s.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying every listed kind.
func (w *World) First(kinds ...Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return NoEntity, false
	}
	return ents[0], true
}

// Count returns the number of live entities carrying the kind.
func (w *World) Count(kind Kind) int {
	if w == nil {
		return 0
	}
	return w.stores[kind.ID()].Len()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the registered systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Update clears last tick's events and runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.flush()
	w.scheduler.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
