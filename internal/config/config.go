package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TokenBackendEnv      = "env"
	TokenBackendPostgres = "postgres"
	TokenBackendSQLite   = "sqlite"
)

type Config struct {
	Port     string
	LogLevel string

	PlaidClientID   string
	PlaidSecret     string
	PlaidEnv        string
	PlaidClientName string
	PlaidWebhookURL string
	PlaidLinkUserID string

	TokenBackend   string
	AccessTokenKey string
	EnvFilePath    string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	SQLitePath string

	SnapshotFile    string
	JWTSecret       string
	AllowedOrigins  []string
	UpstreamTimeout time.Duration
}

// LoadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Postgres defaults match the docker compose setup.
	env := Config{
		Port:     "9446",
		LogLevel: "info",

		PlaidEnv:        "sandbox",
		PlaidClientName: "Finance Inspector",
		PlaidLinkUserID: "user-id",

		TokenBackend:   TokenBackendEnv,
		AccessTokenKey: "ACCESS_TOKEN",
		EnvFilePath:    ".env",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		SQLitePath: "./data/finance-inspector.db",

		AllowedOrigins:  []string{"*"},
		UpstreamTimeout: 30 * time.Second,
	}

	overrideString(&env.Port, "PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")

	overrideString(&env.PlaidClientID, "PLAID_CLIENT_ID")
	overrideString(&env.PlaidSecret, "PLAID_SECRET")
	overrideString(&env.PlaidEnv, "PLAID_ENV")
	overrideString(&env.PlaidClientName, "PLAID_CLIENT_NAME")
	overrideString(&env.PlaidWebhookURL, "PLAID_WEBHOOK_URL")
	overrideString(&env.PlaidLinkUserID, "PLAID_LINK_USER_ID")

	overrideString(&env.TokenBackend, "TOKEN_BACKEND")
	overrideString(&env.AccessTokenKey, "ACCESS_TOKEN_KEY")
	overrideString(&env.EnvFilePath, "ENV_FILE")

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	overrideString(&env.SQLitePath, "SQLITE_PATH")
	overrideString(&env.SnapshotFile, "SNAPSHOT_FILE")
	overrideString(&env.JWTSecret, "JWT_SECRET")

	if origins := os.Getenv("ALLOWED_ORIGINS"); len(origins) != 0 {
		env.AllowedOrigins = splitList(origins)
	}

	if timeout := os.Getenv("UPSTREAM_TIMEOUT"); len(timeout) != 0 {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", timeout, err)
		}
		env.UpstreamTimeout = d
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.PlaidEnv {
	case "sandbox", "development", "production":
	default:
		problems = append(problems, fmt.Sprintf("invalid PLAID_ENV '%s': must be sandbox, development or production", c.PlaidEnv))
	}

	switch c.TokenBackend {
	case TokenBackendEnv:
		if c.EnvFilePath == "" {
			problems = append(problems, "ENV_FILE cannot be empty when using the env token backend")
		}
	case TokenBackendPostgres:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			problems = append(problems, "POSTGRES_ADDRESS and POSTGRES_DB are required when using the postgres token backend")
		}
	case TokenBackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH cannot be empty when using the sqlite token backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid TOKEN_BACKEND '%s': must be env, postgres or sqlite", c.TokenBackend))
	}

	if c.AccessTokenKey == "" {
		problems = append(problems, "ACCESS_TOKEN_KEY cannot be empty")
	}

	if c.SnapshotFile == "" && (c.PlaidClientID == "" || c.PlaidSecret == "") {
		problems = append(problems, "PLAID_CLIENT_ID and PLAID_SECRET are required unless SNAPSHOT_FILE is set")
	}

	if c.PlaidWebhookURL != "" {
		if parsed, err := url.Parse(c.PlaidWebhookURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			problems = append(problems, fmt.Sprintf("invalid PLAID_WEBHOOK_URL '%s': must be an absolute URL", c.PlaidWebhookURL))
		}
	}

	if c.UpstreamTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid UPSTREAM_TIMEOUT %v: must be positive", c.UpstreamTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// PostgresDSN builds the connection string for the postgres token backend.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(field *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*field = value
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
