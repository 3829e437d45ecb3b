package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	SMTP         SMTPConfig         `yaml:"smtp"`
	Storage      StorageConfig      `yaml:"storage"`
	Notification NotificationConfig `yaml:"notification"`
	Application  ApplicationConfig  `yaml:"application"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"gis-admissions-backend"`
}

// AuthConfig holds bearer token verification settings. Tokens are issued by
// the external sign-in service that shares the secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"gis-applications"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig controls the per-IP token bucket applied to the public API.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `yaml:"rps"     env:"RATE_LIMIT_RPS"     env-default:"10"`
	Burst   int     `yaml:"burst"   env:"RATE_LIMIT_BURST"   env-default:"20"`
}

// SMTPConfig holds the outgoing mail transport settings.
type SMTPConfig struct {
	URL     string        `yaml:"url"      env:"SMTP_URL"`
	From    string        `yaml:"from"     env:"SMTP_FROM"     env-default:"GIS Applications <no-reply@gis.local>"`
	CC      string        `yaml:"cc"       env:"SMTP_CC"`
	ReplyTo string        `yaml:"reply_to" env:"SMTP_REPLY_TO"`
	Timeout time.Duration `yaml:"timeout"  env:"SMTP_TIMEOUT"  env-default:"15s"`
}

// StorageConfig holds the S3-compatible object storage settings.
type StorageConfig struct {
	Endpoint  string        `yaml:"endpoint"   env:"S3_ENDPOINT"`
	Port      int           `yaml:"port"       env:"S3_PORT"       env-default:"9000"`
	Scheme    string        `yaml:"scheme"     env:"S3_SCHEME"     env-default:"https"`
	AccessKey string        `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string        `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Region    string        `yaml:"region"     env:"S3_REGION"     env-default:"us-east-1"`
	Bucket    string        `yaml:"bucket"     env:"S3_BUCKET"     env-default:"gis-applications"`
	CDNURL    string        `yaml:"cdn_url"    env:"S3_CDN_URL"`
	UploadTTL time.Duration `yaml:"upload_ttl" env:"S3_UPLOAD_TTL" env-default:"24h"`
}

// Enabled reports whether enough settings are present to create a client.
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != ""
}

// Enabled reports whether an SMTP server is configured.
func (s SMTPConfig) Enabled() bool {
	return s.URL != ""
}

// NotificationConfig holds the batch mailing settings.
type NotificationConfig struct {
	Concurrency       int    `yaml:"concurrency"        env:"NOTIFICATION_CONCURRENCY"        env-default:"8"`
	BaseURL           string `yaml:"base_url"           env:"APP_URL"                         env-default:"http://localhost:3000"`
	InterviewSchedule string `yaml:"interview_schedule" env:"NOTIFICATION_INTERVIEW_SCHEDULE" env-default:"on the 15th of August between 8:00 AM and 2:00 PM"`
}

// ApplicationConfig holds admission-cycle settings.
type ApplicationConfig struct {
	BirthDateFallback  bool   `yaml:"birth_date_fallback"   env:"APP_BIRTH_DATE_FALLBACK"`
	LastApplicationRaw string `yaml:"last_application_date" env:"APP_LAST_APPLICATION_DATE"`

	// LastApplicationDate is parsed from LastApplicationRaw during validation.
	// Zero means the cycle has no deadline.
	LastApplicationDate time.Time `yaml:"-" env:"-"`
}

// Origins splits the comma-separated origin list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
