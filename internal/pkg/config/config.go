package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// TestAdminPassword is the plaintext behind NewTestConfig's admin hash.
const TestAdminPassword = "correct-horse-battery"

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	Cookie    CookieConfig
	Admin     AdminConfig
	Business  BusinessConfig
	Calendar  CalendarConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
	Draft     DraftConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/Los_Angeles"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type SessionConfig struct {
	Secret   string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL      time.Duration `envconfig:"ADMIN_SESSION_TTL" default:"2h"`
	KeySpace string        `envconfig:"SESSION_KEY_PREFIX" default:"admin_session:"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// AdminConfig replaces the hardcoded credentials; PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type BusinessConfig struct {
	TimeZone   string `envconfig:"BUSINESS_TIMEZONE" default:"America/Los_Angeles"`
	WindowDays int    `envconfig:"BOOKING_WINDOW_DAYS" default:"30"`
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"admin@coffechat.dev"`
}

type CalendarConfig struct {
	CalendarID      string `envconfig:"GOOGLE_CALENDAR_ID" default:"primary"`
	ClientID        string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	ClientSecret    string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	RefreshToken    string `envconfig:"GOOGLE_REFRESH_TOKEN" default:""`
	CredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE" default:""`
}

func (c CalendarConfig) Enabled() bool {
	return c.CredentialsFile != "" || (c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != "")
}

type EmailConfig struct {
	Endpoint         string        `envconfig:"EMAILJS_ENDPOINT" default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID        string        `envconfig:"EMAILJS_SERVICE_ID" default:""`
	ClientTemplateID string        `envconfig:"EMAILJS_CLIENT_TEMPLATE_ID" default:""`
	AdminTemplateID  string        `envconfig:"EMAILJS_ADMIN_TEMPLATE_ID" default:""`
	PublicKey        string        `envconfig:"EMAILJS_PUBLIC_KEY" default:""`
	PrivateKey       string        `envconfig:"EMAILJS_PRIVATE_KEY" default:""`
	Timeout          time.Duration `envconfig:"EMAILJS_TIMEOUT" default:"10s"`
}

func (c EmailConfig) Enabled() bool {
	return c.ServiceID != "" && c.PublicKey != ""
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"5"`
}

type DraftConfig struct {
	TTL        time.Duration `envconfig:"DRAFT_TTL" default:"30m"`
	MaxEntries int           `envconfig:"DRAFT_MAX_ENTRIES" default:"10000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BusinessConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Business.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Session: SessionConfig{
			Secret:   "test-session-secret",
			TTL:      2 * time.Hour,
			KeySpace: "test_admin_session:",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Username:     "admin",
			PasswordHash: testAdminPasswordHash(),
		},
		Business: BusinessConfig{
			TimeZone:   "America/Los_Angeles",
			WindowDays: 30,
			AdminEmail: "admin@coffechat.dev",
		},
		Calendar: CalendarConfig{
			CalendarID: "primary",
		},
		Email: EmailConfig{
			Timeout: 2 * time.Second,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 600,
			Burst:     50,
		},
		Draft: DraftConfig{
			TTL:        30 * time.Minute,
			MaxEntries: 1000,
		},
	}
}

func testAdminPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic("failed to hash test admin password: " + err.Error())
	}
	return string(hash)
}
