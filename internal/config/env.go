package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBDSN     string
	JWTSecret string
	DraftTTL  time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	draftTTL := 45 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("DRAFT_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			draftTTL = d
		}
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		DBDSN:     dsn,
		JWTSecret: secret,
		DraftTTL:  draftTTL,
	}
}
