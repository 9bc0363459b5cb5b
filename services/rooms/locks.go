package rooms

import "sync"

// lockTable hands out one mutex per room so requests against the same room
// run one at a time while different rooms proceed in parallel
type lockTable struct {
	mu    sync.Mutex
	rooms map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{rooms: make(map[string]*sync.Mutex)}
}

func (t *lockTable) lock(roomID string) (unlock func()) {
	t.mu.Lock()
	m, ok := t.rooms[roomID]
	if !ok {
		m = &sync.Mutex{}
		t.rooms[roomID] = m
	}
	t.mu.Unlock()

	m.Lock()
	return m.Unlock
}
