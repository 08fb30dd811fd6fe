package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Payment   PaymentConfig   `yaml:"payment"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustForwardedFor enables using the first X-Forwarded-For hop as the
	// rate-limit client key. Only enable behind a trusted proxy.
	TrustForwardedFor bool `yaml:"trust_forwarded_for" env:"SERVER_TRUST_FORWARDED_FOR" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds settings for the rate-limit counter store.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:""`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"     env-default:""`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"2s"`
}

// AuthConfig holds session and token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"communova"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
	SessionTTL     time.Duration `yaml:"session_ttl"      env:"AUTH_SESSION_TTL"      env-default:"720h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
	SecureCookies  bool          `yaml:"secure_cookies"   env:"AUTH_SECURE_COOKIES"   env-default:"true"`
}

// PaymentConfig holds payment gateway settings.
type PaymentConfig struct {
	// GatewaySecret authenticates gateway callbacks: the gateway sends it in
	// the X-Gateway-Token header with every callback. Callbacks come from the
	// payment provider, not from a logged-in user, so they carry no session.
	GatewaySecret string `yaml:"gateway_secret" env:"PAYMENT_GATEWAY_SECRET" env-required:"true"`
}

// RateLimitConfig holds fixed-window rate limiting settings.
// API covers authenticated endpoints; Auth covers login/register, which get
// a tighter budget since they are credential-guessing targets.
type RateLimitConfig struct {
	Window     time.Duration `yaml:"window"      env:"RATELIMIT_WINDOW"      env-default:"15m"`
	Max        int64         `yaml:"max"         env:"RATELIMIT_MAX"         env-default:"100"`
	AuthWindow time.Duration `yaml:"auth_window" env:"RATELIMIT_AUTH_WINDOW" env-default:"15m"`
	AuthMax    int64         `yaml:"auth_max"    env:"RATELIMIT_AUTH_MAX"    env-default:"20"`
	// FailOpen keeps the platform available when the counter store is down.
	// Deliberate availability/security trade-off; set false to fail closed.
	FailOpen bool `yaml:"fail_open" env:"RATELIMIT_FAIL_OPEN" env-default:"true"`
}

// ReconcileConfig holds duplicate-like reconciliation job settings.
type ReconcileConfig struct {
	DeletesPerSecond float64       `yaml:"deletes_per_second" env:"RECONCILE_DELETES_PER_SECOND" env-default:"50"`
	Timeout          time.Duration `yaml:"timeout"            env:"RECONCILE_TIMEOUT"            env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-CSRF-Token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
