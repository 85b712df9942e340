package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments or are secrets
// - default: values common across environments
// Optional collaborators (Stripe, Twilio, SMTP, calendar bridge, Redis) are
// "present iff configured": their presence is decided once at construction,
// never re-derived from the environment mid-request.
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Booking  BookingConfig
	Stripe   StripeConfig
	Twilio   TwilioConfig
	SMTP     SMTPConfig
	Calendar CalendarConfig
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
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	Channel  string `envconfig:"REDIS_EVENT_CHANNEL" default:"bookslot.events"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	Currency     string `envconfig:"PAYMENT_CURRENCY" default:"usd"`
	ReminderCron string `envconfig:"REMINDER_CRON" default:"0 9 * * *"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" default:""`
}

func (c StripeConfig) Enabled() bool {
	return c.SecretKey != ""
}

type TwilioConfig struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	FromNumber string `envconfig:"TWILIO_FROM_NUMBER" default:""`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type SMTPConfig struct {
	Host string `envconfig:"SMTP_HOST" default:""`
	Port string `envconfig:"SMTP_PORT" default:"1025"`
	From string `envconfig:"SMTP_FROM" default:"no-reply@bookslot.local"`
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

type CalendarConfig struct {
	BridgeURL string `envconfig:"CALENDAR_BRIDGE_URL" default:""`
	Token     string `envconfig:"CALENDAR_BRIDGE_TOKEN" default:""`
}

func (c CalendarConfig) Enabled() bool {
	return c.BridgeURL != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			Currency:     "usd",
			ReminderCron: "0 9 * * *",
		},
	}
}
