package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Settings is the process configuration, read from the environment
type Settings struct {
	Port            string
	Prod            bool
	UseHTTPS        bool
	TLSCertFile     string
	TLSKeyFile      string
	SessionKey      []byte
	JWTSecret       []byte
	Store           string
	RedisURL        string
	MigratePostgres bool
}

// Load reads a .env file when there is one, then the environment
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using the environment")
	}
	return FromEnv()
}

func FromEnv() Settings {
	s := Settings{
		Port:            os.Getenv("PORT"),
		Prod:            os.Getenv("PROD") == "true",
		UseHTTPS:        os.Getenv("USE_HTTPS") == "true",
		TLSCertFile:     os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:      os.Getenv("TLS_KEY_FILE"),
		SessionKey:      []byte(os.Getenv("KEY")),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		Store:           os.Getenv("STORE"),
		RedisURL:        os.Getenv("REDIS_URL"),
		MigratePostgres: os.Getenv("MIGRATE_POSTGRES") == "true",
	}
	if s.Port == "" {
		if s.UseHTTPS {
			s.Port = "443"
		} else {
			s.Port = "8080"
		}
	}
	if s.Store == "" {
		s.Store = StorePostgres
	}
	if len(s.JWTSecret) == 0 {
		// Tokens then only survive as long as the session key does
		s.JWTSecret = s.SessionKey
	}
	return s
}
