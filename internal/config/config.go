package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Store    StoreConfig    `yaml:"store"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Persona  PersonaConfig  `yaml:"persona"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// An empty DSN is allowed: the postgres driver then starts unavailable.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// Store drivers.
const (
	DriverAuto      = "auto"
	DriverPostgres  = "postgres"
	DriverPostgREST = "postgrest"
)

// StoreConfig selects the persistence driver.
// "auto" picks postgres when a DSN is set, otherwise postgrest when the
// Supabase URL is set.
type StoreConfig struct {
	Driver         string        `yaml:"driver"          env:"STORE_DRIVER"          env-default:"auto"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"STORE_REQUEST_TIMEOUT" env-default:"10s"`
}

// SupabaseConfig holds the hosted REST provider endpoint and public key.
type SupabaseConfig struct {
	URL     string `yaml:"url"      env:"SUPABASE_URL"`
	AnonKey string `yaml:"anon_key" env:"SUPABASE_ANON_KEY"`
}

// Configured reports whether both provider values are present.
func (c SupabaseConfig) Configured() bool {
	return c.URL != "" && c.AnonKey != ""
}

// PersonaConfig holds settings for the persona chat service.
type PersonaConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"PERSONA_BASE_URL"        env-default:"http://localhost:8000"`
	Timeout       time.Duration `yaml:"timeout"         env:"PERSONA_TIMEOUT"         env-default:"60s"`
	SearchK       int           `yaml:"search_k"        env:"PERSONA_SEARCH_K"        env-default:"5"`
	ChatPerMinute int           `yaml:"chat_per_minute" env:"PERSONA_CHAT_PER_MINUTE" env-default:"20"`
}

// AuthConfig holds settings for validating provider-issued access tokens.
// An empty secret disables authentication.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"supabase"`
}

// Enabled reports whether write routes require a logged-in user.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ResolvedDriver returns the concrete driver name for the configuration.
// It returns "" when the driver is "auto" and nothing is configured.
func (c *Config) ResolvedDriver() string {
	if c.Store.Driver != DriverAuto {
		return c.Store.Driver
	}
	switch {
	case c.Database.DSN != "":
		return DriverPostgres
	case c.Supabase.URL != "":
		return DriverPostgREST
	}
	return ""
}
