package socket_io

import (
	game_constants "Chipster/constants/game"
	"Chipster/middleware"
	"Chipster/services/rooms"
	"Chipster/services/socket_io/handlers"
	socketio_types "Chipster/services/socket_io/types"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

var errMissingAuth = errors.New("missing authorization token")

// authenticate reads the JWT sent in the handshake auth payload
func authenticate(auth interface{}, secret []byte) (rooms.Caller, error) {
	authData, ok := auth.(map[string]interface{})
	if !ok {
		return rooms.Caller{}, errMissingAuth
	}
	token, ok := authData["authorization"].(string)
	if !ok || token == "" {
		return rooms.Caller{}, errMissingAuth
	}
	claims, err := middleware.ParseToken(secret, middleware.BearerToken(token))
	if err != nil {
		return rooms.Caller{}, err
	}
	return rooms.Caller{UserID: claims.Subject, Name: claims.Name}, nil
}

// Start mounts the socket.io endpoints on the router. Call Close on shutdown.
func (sio *MySocketServer) Start(router *gin.Engine, svc *rooms.Service, secret []byte, debug bool) {
	log.DEBUG = debug
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: the map must exist before the first connection
	if sio.UserConnections == nil {
		sio.UserConnections = make(map[string]*socket.Socket)
	}
	server := (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		caller, err := authenticate(client.Handshake().Auth, secret)
		if err != nil {
			fmt.Println("Socket authentication failed:", err)
			client.Emit(game_constants.EVENT_ERROR, gin.H{
				"error": "Authentication failed: send the login token in the 'authorization' auth field",
			})
			client.Disconnect(true)
			return
		}

		id := string(client.Id())
		server.AddConnection(id, client)
		fmt.Println("An individual just connected!: ", caller.Name)

		// Watch a room: every change is pushed as room_updated
		client.On(game_constants.EVENT_JOIN_ROOM, handlers.HandleJoinRoom(svc, client, caller))

		client.On(game_constants.EVENT_LEAVE_ROOM, handlers.HandleLeaveRoom(client, caller))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(id, caller, server))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	fmt.Println("Socket server started")
}

// Close disconnects every client
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
