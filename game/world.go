package game

import "time"

// Handle addresses an arena slot; a stale generation never resolves
type Handle struct {
	Index uint32
	Gen   uint32
}

type slotState uint8

const (
	slotFree slotState = iota
	slotPending
	slotActive
)

type slot struct {
	entity Entity
	gen    uint32
	state  slotState
}

// World is the arena of live entities. Entities spawned during a tick are
// pending until the end-of-tick sweep; finished slots are freed there too.
type World struct {
	slots []slot

	// Indices ready for reuse, only filled by the sweep
	free []uint32

	// Pending spawns in spawn order
	pending []uint32
}

// NewWorld creates an empty arena
func NewWorld() *World {
	return &World{
		slots:   make([]slot, 0, 512),
		free:    make([]uint32, 0, 128),
		pending: make([]uint32, 0, 64),
	}
}

// Spawn registers an entity. It becomes active at the next sweep.
func (w *World) Spawn(e Entity) Handle {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}
	s := &w.slots[idx]
	s.entity = e
	s.state = slotPending
	h := Handle{Index: idx, Gen: s.gen}
	e.Core().Handle = h
	w.pending = append(w.pending, idx)
	return h
}

// Get resolves a handle to a live entity
func (w *World) Get(h Handle) (Entity, bool) {
	if int(h.Index) >= len(w.slots) {
		return nil, false
	}
	s := &w.slots[h.Index]
	if s.state == slotFree || s.gen != h.Gen || s.entity.Finished() {
		return nil, false
	}
	return s.entity, true
}

// Update runs one tick over the entities that were active when it started
func (w *World) Update(now time.Time) {
	n := len(w.slots)
	for i := 0; i < n; i++ {
		s := &w.slots[i]
		if s.state != slotActive || s.entity.Finished() {
			continue
		}
		s.entity.Update(now)
	}
}

// Sweep frees finished slots and activates pending ones
func (w *World) Sweep() {
	for i := range w.slots {
		s := &w.slots[i]
		if s.state == slotFree || !s.entity.Finished() {
			continue
		}
		// finished while pending counts as well
		s.entity = nil
		s.state = slotFree
		s.gen++
		w.free = append(w.free, uint32(i))
	}
	for _, idx := range w.pending {
		s := &w.slots[idx]
		if s.state == slotPending {
			s.state = slotActive
		}
	}
	w.pending = w.pending[:0]
}

// Player returns the live player, pending spawns included
func (w *World) Player() *Player {
	for i := range w.slots {
		s := &w.slots[i]
		if s.state == slotFree || s.entity.Finished() {
			continue
		}
		if p, ok := s.entity.(*Player); ok {
			return p
		}
	}
	return nil
}

// Each calls fn for every unfinished entity, pending ones included
func (w *World) Each(fn func(e Entity)) {
	for i := range w.slots {
		s := &w.slots[i]
		if s.state == slotFree || s.entity.Finished() {
			continue
		}
		fn(s.entity)
	}
}

// Count returns the number of unfinished entities of kind
func (w *World) Count(kind EntityKind) int {
	count := 0
	w.Each(func(e Entity) {
		if e.Kind() == kind {
			count++
		}
	})
	return count
}

// Counts returns unfinished entity counts per kind
func (w *World) Counts() map[EntityKind]int {
	counts := make(map[EntityKind]int, int(kindCount))
	w.Each(func(e Entity) {
		counts[e.Kind()]++
	})
	return counts
}

// Len returns the number of unfinished entities
func (w *World) Len() int {
	count := 0
	w.Each(func(Entity) { count++ })
	return count
}

// Clear finishes every entity and empties the arena
func (w *World) Clear() {
	w.Each(func(e Entity) { e.Finish() })
	w.Sweep()
}
