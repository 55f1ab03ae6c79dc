// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the EventDev API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Draft store (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Admin token verification (public key only; signing happens offline)
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Object Storage (MinIO / S3-compatible) for event images
	StorageEndpoint  string `env:"STORAGE_ENDPOINT,required"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY,required"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY,required"`
	StorageBucket    string `env:"STORAGE_BUCKET"    envDefault:"eventdev-images"`
	StorageUseSSL    bool   `env:"STORAGE_USE_SSL"   envDefault:"false"`

	// Booking confirmation email (provider "ses" or "noop")
	EmailProvider      string `env:"EMAIL_PROVIDER"        envDefault:"noop"`
	EmailFromAddress   string `env:"EMAIL_FROM_ADDRESS"    envDefault:"no-reply@eventdev.app"`
	EmailFromName      string `env:"EMAIL_FROM_NAME"       envDefault:"EventDev"`
	SESRegion          string `env:"SES_REGION"            envDefault:"us-east-1"`
	SESAccessKeyID     string `env:"SES_ACCESS_KEY_ID"`
	SESSecretAccessKey string `env:"SES_SECRET_ACCESS_KEY"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
