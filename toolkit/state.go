package toolkit

// Widget state is retained between frames in typed stores keyed by widget
// ID. Each store has a retention window measured in frames: entries not
// touched within the window are evicted when the frame advances, so state
// for widgets that stop being submitted does not accumulate forever.
// Stores with retainForever never evict; window positions and tree
// open flags survive even when their widget is hidden for a while.

const retainForever = ^uint64(0)

type cleaner interface {
	cleanup(frame uint64)
}

// stateBank tracks the frame counter and the stores that evict against it.
// Each Context owns one bank, so separate GUI instances never share state.
type stateBank struct {
	frame  uint64
	stores []cleaner
}

// nextFrame advances the frame counter and runs eviction on every store.
func (b *stateBank) nextFrame() {
	b.frame++
	for _, s := range b.stores {
		s.cleanup(b.frame)
	}
}

type stateEntry[T any] struct {
	value     *T
	lastFrame uint64
}

// store holds per-widget state of one type, keyed by widget ID.
type store[T any] struct {
	bank    *stateBank
	entries map[ID]*stateEntry[T]
	retain  uint64
}

// newStore creates a store registered with the bank. retain is the
// number of frames an untouched entry survives.
func newStore[T any](bank *stateBank, retain uint64) *store[T] {
	s := &store[T]{
		bank:    bank,
		entries: make(map[ID]*stateEntry[T]),
		retain:  retain,
	}
	bank.stores = append(bank.stores, s)
	return s
}

// get returns the state for id, creating a zero value if absent.
// The entry is marked as touched this frame.
func (s *store[T]) get(id ID) *T {
	e, ok := s.entries[id]
	if !ok {
		e = &stateEntry[T]{value: new(T)}
		s.entries[id] = e
	}
	e.lastFrame = s.bank.frame
	return e.value
}

// getIfExists returns the state for id without creating it.
// An existing entry is marked as touched this frame.
func (s *store[T]) getIfExists(id ID) (*T, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	e.lastFrame = s.bank.frame
	return e.value, true
}

// delete removes the state for id.
func (s *store[T]) delete(id ID) {
	delete(s.entries, id)
}

// len returns the number of retained entries.
func (s *store[T]) len() int {
	return len(s.entries)
}

// cleanup evicts entries whose last touch is older than the retention
// window.
func (s *store[T]) cleanup(frame uint64) {
	if s.retain == retainForever {
		return
	}
	for id, e := range s.entries {
		if frame-e.lastFrame > s.retain {
			delete(s.entries, id)
		}
	}
}
