package likes

import "sync"

// Store persists like counts by user id.
// Implementations must be safe for concurrent use.
type Store interface {
	Load(id int64) (count int, ok bool, err error)
	Store(id int64, count int) error
}

type inMemStore struct {
	m *sync.Map
}

func (s inMemStore) Load(id int64) (int, bool, error) {
	v, ok := s.m.Load(id)
	if !ok {
		return 0, false, nil
	}
	return v.(int), true, nil
}

func (s inMemStore) Store(id int64, count int) error {
	s.m.Store(id, count)
	return nil
}

// NewInMemoryStore returns a Store seeded with init.
func NewInMemoryStore(init map[int64]int) Store {
	s := inMemStore{m: &sync.Map{}}
	for id, count := range init {
		s.m.Store(id, count)
	}
	return s
}
