// Command admintoken prints a signed admin token for the cache refresh route.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"altoque/internal/config"
	"altoque/internal/middleware"

	"github.com/spf13/pflag"
)

var errAdminDisabled = errors.New("admin.jwt_secret is not set; admin routes are disabled")

func issueToken(cfg *config.Config, subject string, ttl time.Duration) (string, error) {
	if cfg.Admin.JWTSecret == "" {
		return "", errAdminDisabled
	}
	if subject == "" {
		return "", errors.New("subject is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	return middleware.SignAdminToken(cfg.Admin.JWTSecret, subject, ttl)
}

func main() {
	subject := pflag.StringP("subject", "s", "", "Who the token is issued to (required)")
	ttl := pflag.DurationP("ttl", "t", 24*time.Hour, "How long the token stays valid")
	pflag.Parse()

	if *subject == "" {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	token, err := issueToken(cfg, *subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to issue admin token: %v", err)
	}
	fmt.Println(token)
}
