package item

import (
	"sync"
	"time"
)

// Store owns the catalog and basket collections for the lifetime of the
// process. Every operation takes the one lock, so a read never observes a
// half-applied mutation and mutations never interleave.
//
// There is deliberately no ambient instance: the hosting process constructs a
// Store once and hands it to whatever needs it.
type Store struct {
	mu          sync.Mutex
	menu        []Item
	basket      []Item
	nextMenuID  int64
	basketClock int64
}

// NewStore returns a store seeded with the sample catalog and an empty basket.
func NewStore() *Store {
	menu := sampleMenu()
	var maxID int64
	for _, it := range menu {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return &Store{
		menu:        menu,
		nextMenuID:  maxID + 1,
		basketClock: time.Now().UnixMilli(),
	}
}

// List returns a fresh snapshot of the collection with the query pipeline
// applied. Mutating the returned slice never touches stored state.
func (s *Store) List(c Collection, q Query) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Apply(s.collection(c), q)
}

// Get returns the stored item with the given identity, if any.
func (s *Store) Get(c Collection, id int64) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.collection(c) {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Create validates the payload, assigns a fresh identity and appends the item.
// It returns the updated collection snapshot.
func (s *Store) Create(c Collection, p Patch) ([]Item, error) {
	it, err := ValidateNew(p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = s.nextID(c)
	switch c {
	case CollectionMenu:
		s.menu = append(s.menu, it)
	default:
		s.basket = append(s.basket, it)
	}
	return s.snapshot(c), nil
}

// Update merges the patch into the stored item and revalidates the whole
// result. A failed validation leaves the stored item untouched. Returns the
// updated collection snapshot.
func (s *Store) Update(c Collection, id int64, p Patch) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection(c)
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	merged := p.apply(items[idx])
	merged.ID = id
	if err := Validate(merged); err != nil {
		return nil, err
	}

	items[idx] = merged
	return s.snapshot(c), nil
}

// Delete removes the item with the given identity and returns the updated
// collection snapshot.
func (s *Store) Delete(c Collection, id int64) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection(c)
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	items = append(items[:idx], items[idx+1:]...)
	switch c {
	case CollectionMenu:
		s.menu = items
	default:
		s.basket = items
	}
	return s.snapshot(c), nil
}

func (s *Store) collection(c Collection) []Item {
	if c == CollectionMenu {
		return s.menu
	}
	return s.basket
}

func (s *Store) snapshot(c Collection) []Item {
	src := s.collection(c)
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// nextID hands out identities. Catalog items get small sequential IDs; basket
// items get a wall-clock-seeded value that only moves forward, so two rapid
// additions can never collide the way raw millisecond timestamps could.
func (s *Store) nextID(c Collection) int64 {
	if c == CollectionMenu {
		id := s.nextMenuID
		s.nextMenuID++
		return id
	}
	now := time.Now().UnixMilli()
	if now > s.basketClock {
		s.basketClock = now
	} else {
		s.basketClock++
	}
	return s.basketClock
}

func indexOf(items []Item, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
