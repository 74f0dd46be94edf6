// Command issue-token mints a bearer token for an owner.
//
// Usage:
//
//	issue-token [--owner=<uuid>] [--ttl=720h]
//
// Requires auth.jwt_secret to be configured. The owner row is created when
// missing so the token works on its first request.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/app"
	"github.com/heartmarshall/daily-pos-backend/internal/auth"
	"github.com/heartmarshall/daily-pos-backend/internal/config"
)

func main() {
	ownerFlag := flag.String("owner", "", "owner id (default: configured default owner)")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	if !cfg.Auth.JWTEnabled() {
		fmt.Fprintln(os.Stderr, "auth.jwt_secret is not set; tokens cannot be issued")
		os.Exit(1)
	}

	ownerID := cfg.Auth.DefaultOwner
	if *ownerFlag != "" {
		if ownerID, err = uuid.Parse(*ownerFlag); err != nil {
			log.Fatalf("parse --owner: %v", err)
		}
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := app.OpenDatabase(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := app.EnsureOwner(ctx, app.NewRepos(pool).Users, ownerID); err != nil {
		logger.Error("ensure owner", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ttl := cfg.Auth.AccessTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(ownerID)
	if err != nil {
		logger.Error("issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "owner %s, expires %s\n", ownerID, time.Now().Add(ttl).UTC().Format(time.RFC3339))
	fmt.Println(token)
}
