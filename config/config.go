// Package config provides configuration management for the datamon application.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: instead of failing on the first bad variable,
// all problems are gathered and reported in a single error so an operator can
// fix the whole environment in one pass.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// AuthConfig holds session-related configuration.
type AuthConfig struct {
	// SessionSecret signs the session cookie. It must come from the
	// environment; there is deliberately no built-in default.
	SessionSecret   string
	SessionDuration time.Duration // Lifetime of an issued session token
}

// StoreConfig holds the locations of the durable JSON collections.
type StoreConfig struct {
	DataFile     string // Record collection
	UsersFile    string // User collection
	FilteredFile string // Last-computed filter snapshot
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Auth   *AuthConfig
	Store  *StoreConfig
	Server *ServerConfig
}

// Helper function to get a required environment variable.
// Appends an error to the errors slice if the variable is not set.
// This promotes a "fail fast" approach for critical missing configurations.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return "" // Return empty string, error is collected
	}
	return value
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as time.Duration.
// Uses defaultValue if not set; appends an error if parsing fails.
// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueDuration
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
func LoadConfig() (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	// Session configuration.
	// The signing secret is required: a hardcoded fallback would let every
	// deployment mint valid session cookies for every other deployment.
	sessionSecret := getRequiredEnv("SESSION_SECRET", &errors)
	sessionDuration := getOptionalEnvDuration("SESSION_DURATION", 24*time.Hour, &errors)

	authConfig := &AuthConfig{
		SessionSecret:   sessionSecret,
		SessionDuration: sessionDuration,
	}

	// Store configuration. The defaults match the conventional file names
	// (`data.json`, `users.json`, `filtered_data.json`) in the working directory.
	storeConfig := &StoreConfig{
		DataFile:     getOptionalEnv("DATA_FILE", "data.json"),
		UsersFile:    getOptionalEnv("USERS_FILE", "users.json"),
		FilteredFile: getOptionalEnv("FILTERED_FILE", "filtered_data.json"),
	}

	// Server configuration.
	serverPort := getOptionalEnv("PORT", "8080")
	serverConfig := &ServerConfig{
		// The port is kept as a string because it's used directly when
		// composing the listen address (e.g. ":8080").
		Port: serverPort,
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Auth:   authConfig,
		Store:  storeConfig,
		Server: serverConfig,
	}, nil
}
