package main

import (
	"Chipster/config"
	pgconfig "Chipster/config/postgres"
	_ "Chipster/config/swagger"
	"Chipster/middleware"
	"Chipster/routes"
	"Chipster/services/redis"
	"Chipster/services/rooms"
	"Chipster/services/socket_io"
	socketio_types "Chipster/services/socket_io/types"
	roomsync "Chipster/services/sync"
	"Chipster/services/users"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

// @title Chipster API
// @version 1.0
// @description Gin-Gonic server for multi-table Texas Hold'em chip tracking
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	settings := config.Load()
	log.Println("Setting up server...")

	if settings.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	var roomStore rooms.Store
	var userStore users.Store
	var closers []func()

	switch settings.Store {
	case config.StoreMemory:
		log.Println("Using the in-memory store, nothing survives a restart")
		roomStore = rooms.NewMemoryStore()
		userStore = users.NewMemoryStore()
	case config.StorePostgres:
		gormDB, err := pgconfig.ConnectGORM()
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}

		// Only migrate in development or during deployment
		if settings.MigratePostgres {
			log.Println("Migrating PostgreSQL database...")
			if err := pgconfig.MigrateDatabase(gormDB); err != nil {
				log.Printf("Warning: Database migration failed: %v", err)
			}
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
		}
		closers = append(closers, func() { sqlDB.Close() })

		roomStore = rooms.NewGormStore(gormDB)
		userStore = users.NewGormStore(gormDB)
	default:
		log.Fatalf("Unknown STORE %q, use postgres or memory", settings.Store)
	}

	redisClient, err := config.Connect_redis(settings.RedisURL)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	if redisClient != nil {
		roomStore = roomsync.NewSyncManager(redisClient, roomStore)
		closers = append(closers, func() { redis.CloseRedis(redisClient) })
	}

	service := rooms.NewService(roomStore, nil)

	// Request logging comes from utils.Logger, see routes
	r := gin.New()
	r.Use(gin.Recovery())

	middleware.SetUpMiddleware(r, settings.SessionKey)

	routes.SetupRoutes(r, service, userStore, settings.JWTSecret)

	sio := &socket_io.MySocketServer{}
	sio.Start(r, service, settings.JWTSecret, !settings.Prod)
	service.SetNotifier((*socketio_types.SocketServer)(sio))
	closers = append([]func(){sio.Close}, closers...)

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		s := <-signalC
		log.Printf("Received %v, shutting down", s)
		for _, fn := range closers {
			fn()
		}
		os.Exit(0)
	}()

	port := settings.Port
	log.Printf("Server starting on port %s", port)
	if settings.UseHTTPS {
		//SSL certification configuration for HTTPS
		if err := r.RunTLS(":"+port, settings.TLSCertFile, settings.TLSKeyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
