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

	KafkaBrokers []string
	KafkaTopic   string

	ElasticURL string
}

func Load() *Config {
	return &Config{
		ServiceName: pkgcfg.EnvDefault("SERVICE_NAME", "todo-service"),
		ServerPort:  pkgcfg.EnvIntDefault("SERVER_PORT", 8082),
		DatabaseURL: pkgcfg.MustEnv("DATABASE_URL"),

		JWTSecret:   []byte(pkgcfg.MustEnv("JWT_SECRET")),
		JWTIssuer:   pkgcfg.MustEnv("JWT_ISSUER"),
		JWTAudience: pkgcfg.MustEnv("JWT_AUDIENCE"),
		AccessTTL:   time.Duration(pkgcfg.MustEnvInt("ACCESS_TTL_MINUTES")) * time.Minute,

		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   pkgcfg.EnvDefault("KAFKA_TOPIC", "todo-events"),

		ElasticURL: os.Getenv("ELASTIC_URL"),
	}
}
