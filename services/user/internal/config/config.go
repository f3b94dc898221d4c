package config

import (
	"os"
	"time"

	pkgcfg "github.com/burakmt/todo-platform/pkg/config"
)

type Config struct {
	ServiceName string
	ServerPort  int
	DatabaseURL string

	JWTSecret   []byte
	JWTIssuer   string
	JWTAudience string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	AdminEmail    string
	AdminPassword string
}

// Load reads the environment once at startup. Token configuration is
// mandatory: better to die here than mint unverifiable tokens later.
func Load() *Config {
	return &Config{
		ServiceName: pkgcfg.EnvDefault("SERVICE_NAME", "user-service"),
		ServerPort:  pkgcfg.EnvIntDefault("SERVER_PORT", 8081),
		DatabaseURL: pkgcfg.MustEnv("DATABASE_URL"),

		JWTSecret:   []byte(pkgcfg.MustEnv("JWT_SECRET")),
		JWTIssuer:   pkgcfg.MustEnv("JWT_ISSUER"),
		JWTAudience: pkgcfg.MustEnv("JWT_AUDIENCE"),
		AccessTTL:   time.Duration(pkgcfg.MustEnvInt("ACCESS_TTL_MINUTES")) * time.Minute,
		RefreshTTL:  time.Duration(pkgcfg.MustEnvInt("REFRESH_TTL_DAYS")) * 24 * time.Hour,

		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   pkgcfg.EnvDefault("KAFKA_TOPIC", "user-events"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}
