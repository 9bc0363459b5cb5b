package socketio_types

import (
	game_constants "Chipster/constants/game"
	"Chipster/services/poker"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It pushes room changes to the clients watching each room.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track socket id -> connection
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(id string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[id] = socket
}

func (s *SocketServer) RemoveConnection(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, id)
}

func (s *SocketServer) GetConnection(id string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[id]
	return socket, exists
}

func (s *SocketServer) ConnectionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.UserConnections)
}

// RoomUpdated sends the new room state to every socket in the room
func (s *SocketServer) RoomUpdated(room *poker.Room) {
	if s.Sio_server == nil || room == nil {
		return
	}
	s.Sio_server.To(socket.Room(room.ID)).Emit(game_constants.EVENT_ROOM_UPDATED, room)
	log.Printf("[SOCKET] Room %s broadcast to its watchers", room.ID)
}

// HandFinished announces the winner of a hand to the room
func (s *SocketServer) HandFinished(roomID string, result poker.HandResult) {
	if s.Sio_server == nil {
		return
	}
	s.Sio_server.To(socket.Room(roomID)).Emit(game_constants.EVENT_HAND_RESULT, gin.H{
		"roomId": roomID,
		"result": result,
	})
}
