package config

import (
	"time"

	pkgcfg "github.com/burakmt/todo-platform/pkg/config"
)

type Config struct {
	ListenAddr string
	UserURL    string
	TodoURL    string

	JWTSecret   []byte
	JWTIssuer   string
	JWTAudience string
	AccessTTL   time.Duration
}

func Load() *Config {
	return &Config{
		ListenAddr: pkgcfg.EnvDefault("GATEWAY_ADDR", ":8080"),
		UserURL:    pkgcfg.MustEnv("USER_SERVICE_URL"),
		TodoURL:    pkgcfg.MustEnv("TODO_SERVICE_URL"),

		JWTSecret:   []byte(pkgcfg.MustEnv("JWT_SECRET")),
		JWTIssuer:   pkgcfg.MustEnv("JWT_ISSUER"),
		JWTAudience: pkgcfg.MustEnv("JWT_AUDIENCE"),
		AccessTTL:   time.Duration(pkgcfg.MustEnvInt("ACCESS_TTL_MINUTES")) * time.Minute,
	}
}
