package config

import (
	"os"

	"github.com/gorilla/securecookie"
)

type Config struct {
	Addr         string
	DatabasePath string
	SessionKey   []byte
}

// Load reads configuration from the environment. A missing session key
// gets a random one, which invalidates existing logins on restart.
func Load() Config {
	key := []byte(os.Getenv("TOPOLOGY_SESSION_KEY"))
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	return Config{
		Addr:         getEnv("TOPOLOGY_ADDR", ":8080"),
		DatabasePath: getEnv("TOPOLOGY_DB_PATH", "topology.db"),
		SessionKey:   key,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
