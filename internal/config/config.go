package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Database driver names accepted in [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// anteater server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in local-development defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token sign key and
	// the bcrypt cost factor.
	App App `envPrefix:"ANTEATER_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"ANTEATER_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"ANTEATER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the ANTEATER_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"ANTEATER_CONFIG" json:"-"`
}

// App holds application-level configuration values that control security
// and the token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: ANTEATER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: ANTEATER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: ANTEATER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"token_duration"`

	// BcryptCost is the cost factor applied when hashing passwords.
	// Zero means bcrypt's default. Tests lower it to keep hashing fast.
	// Env: ANTEATER_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST" json:"bcrypt_cost"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
// The discrete host/port/user/password/name fields are assembled into a
// driver DSN by [DB.DSN]; they default to local development values.
type DB struct {
	// Driver selects the storage engine: "postgres" (default) or "sqlite".
	// Env: ANTEATER_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// Host is the database server host.
	// Env: ANTEATER_DB_HOST
	Host string `env:"HOST" json:"host"`

	// Port is the database server port.
	// Env: ANTEATER_DB_PORT
	Port int `env:"PORT" json:"port"`

	// User is the database role used for all connections.
	// Env: ANTEATER_DB_USER
	User string `env:"USER" json:"user"`

	// Password is the database role password.
	// Env: ANTEATER_DB_PASSWORD
	Password string `env:"PASSWORD" json:"password"`

	// Name is the database (catalog) name.
	// Env: ANTEATER_DB_NAME
	Name string `env:"NAME" json:"name"`

	// SSLMode is passed through to the PostgreSQL driver.
	// Env: ANTEATER_DB_SSLMODE
	SSLMode string `env:"SSLMODE" json:"sslmode"`

	// Path is the SQLite database file, used only when Driver is "sqlite".
	// ":memory:" opens an in-process disposable store.
	// Env: ANTEATER_DB_PATH
	Path string `env:"PATH" json:"path"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: ANTEATER_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: ANTEATER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// DSN assembles the driver-specific connection string from the discrete
// connection fields. For SQLite this is simply the database file path.
func (db DB) DSN() string {
	if db.Driver == DriverSQLite {
		return db.Path
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   db.Host + ":" + strconv.Itoa(db.Port),
		Path:   "/" + db.Name,
	}
	if db.SSLMode != "" {
		u.RawQuery = "sslmode=" + db.SSLMode
	}

	return u.String()
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Local-development defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetEnvConfig loads and validates configuration from environment variables
// and defaults only. Intended for binaries like anteaterctl that parse their
// own command-line arguments and must not touch the global flag set.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	switch db.Driver {
	case DriverPostgres:
		if db.Host == "" || db.Port <= 0 || db.Name == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverSQLite:
		if db.Path == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Server.Address == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.BcryptCost < 0 || cfg.App.BcryptCost > 31 {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}

	return nil
}
