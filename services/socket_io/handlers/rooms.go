package handlers

import (
	game_constants "Chipster/constants/game"
	"Chipster/services/rooms"
	socketio_types "Chipster/services/socket_io/types"
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

const lookupTimeout = 5 * time.Second

// roomArg reads the room id sent as first argument of an event
func roomArg(client *socket.Socket, args []interface{}) (string, bool) {
	if len(args) < 1 {
		client.Emit(game_constants.EVENT_ERROR, gin.H{"error": "Missing room id"})
		return "", false
	}
	roomID, ok := args[0].(string)
	if !ok || roomID == "" {
		client.Emit(game_constants.EVENT_ERROR, gin.H{"error": "Room id must be a string"})
		return "", false
	}
	return roomID, true
}

// HandleJoinRoom subscribes the socket to a room and sends it the current state.
// Watching does not take a seat; seats are taken over HTTP.
func HandleJoinRoom(svc *rooms.Service, client *socket.Socket, caller rooms.Caller) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomID, ok := roomArg(client, args)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()
		room, err := svc.GetRoom(ctx, roomID)
		if err != nil {
			if !rooms.IsClientError(err) {
				log.Printf("[JOIN-ERROR] Loading room %s for %s: %v", roomID, caller.Name, err)
			}
			client.Emit(game_constants.EVENT_ERROR, gin.H{"error": err.Error()})
			return
		}

		client.Join(socket.Room(roomID))
		log.Printf("[JOIN] %s is watching room %s", caller.Name, roomID)
		client.Emit(game_constants.EVENT_ROOM_UPDATED, room)
	}
}

// HandleLeaveRoom stops pushing a room to the socket. The seat is kept.
func HandleLeaveRoom(client *socket.Socket, caller rooms.Caller) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomID, ok := roomArg(client, args)
		if !ok {
			return
		}
		client.Leave(socket.Room(roomID))
		log.Printf("[LEAVE] %s stopped watching room %s", caller.Name, roomID)
		client.Emit("room_left", gin.H{"roomId": roomID})
	}
}

// HandleDisconnecting forgets the connection; rooms are left by socket.io itself
func HandleDisconnecting(id string, caller rooms.Caller, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		sio.RemoveConnection(id)
		log.Printf("[DISCONNECT] %s disconnected (%d connections left)", caller.Name, sio.ConnectionCount())
	}
}
