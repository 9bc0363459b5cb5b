package rooms

import (
	game_constants "Chipster/constants/game"
	models "Chipster/models/postgres"
	"Chipster/services/poker"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRoom struct {
	room         *poker.Room
	passwordHash string
	seq          int
}

// MemoryStore keeps everything in process memory. Used with STORE=memory and
// in tests; nothing survives a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	rooms   map[string]*memoryRoom
	actions map[string][]models.GameAction
	results map[string][]models.HandResult
	seq     int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:   make(map[string]*memoryRoom),
		actions: make(map[string][]models.GameAction),
		results: make(map[string][]models.HandResult),
	}
}

func (m *MemoryStore) snapshot(e *memoryRoom) *poker.Room {
	r := e.room.Clone()
	r.HasPassword = e.passwordHash != ""
	return r
}

func (m *MemoryStore) CreateRoom(ctx context.Context, room *poker.Room, passwordHash string) (*poker.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := room.Clone()
	if r.ID == "" {
		for {
			r.ID = models.GenerateRoomCode(game_constants.ROOM_CODE_LENGTH)
			if _, taken := m.rooms[r.ID]; !taken {
				break
			}
		}
	} else if _, taken := m.rooms[r.ID]; taken {
		return nil, fmt.Errorf("room %s already exists", r.ID)
	}
	m.seq++
	e := &memoryRoom{room: r, passwordHash: passwordHash, seq: m.seq}
	m.rooms[r.ID] = e
	return m.snapshot(e), nil
}

func (m *MemoryStore) GetRoom(ctx context.Context, id string) (*poker.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rooms[id]
	if !ok {
		return nil, poker.ErrRoomNotFound
	}
	return m.snapshot(e), nil
}

func (m *MemoryStore) SaveRoom(ctx context.Context, room *poker.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rooms[room.ID]
	if !ok {
		return poker.ErrRoomNotFound
	}
	e.room = room.Clone()
	return nil
}

func (m *MemoryStore) ListRooms(ctx context.Context) ([]*poker.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	open := make([]*memoryRoom, 0, len(m.rooms))
	for _, e := range m.rooms {
		if e.room.IsActive {
			open = append(open, e)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].seq > open[j].seq })

	list := make([]*poker.Room, len(open))
	for i, e := range open {
		list[i] = m.snapshot(e)
	}
	return list, nil
}

func (m *MemoryStore) SetPassword(ctx context.Context, id, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rooms[id]
	if !ok {
		return poker.ErrRoomNotFound
	}
	e.passwordHash = passwordHash
	return nil
}

func (m *MemoryStore) PasswordHash(ctx context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rooms[id]
	if !ok {
		return "", poker.ErrRoomNotFound
	}
	return e.passwordHash, nil
}

func (m *MemoryStore) AppendAction(ctx context.Context, action *models.GameAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if action.ID == "" {
		action.ID = uuid.NewString()
	}
	action.CreatedAt = time.Now()
	m.actions[action.RoomID] = append(m.actions[action.RoomID], *action)
	return nil
}

func (m *MemoryStore) AppendResult(ctx context.Context, result *models.HandResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	result.CreatedAt = time.Now()
	m.results[result.RoomID] = append(m.results[result.RoomID], *result)
	return nil
}

func (m *MemoryStore) ListActions(ctx context.Context, roomID string) ([]models.GameAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.rooms[roomID]; !ok {
		return nil, poker.ErrRoomNotFound
	}
	return append([]models.GameAction{}, m.actions[roomID]...), nil
}

func (m *MemoryStore) ListResults(ctx context.Context, roomID string) ([]models.HandResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.rooms[roomID]; !ok {
		return nil, poker.ErrRoomNotFound
	}
	return append([]models.HandResult{}, m.results[roomID]...), nil
}
