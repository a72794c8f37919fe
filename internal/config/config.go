package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"DEFAULT_TTL" env:"CACHE_DEFAULT_TTL" env-default:"10m"`
}

// SMTP mirrors the transport settings of the original deployment. All four
// of host, port, user and password must be present for the transport to be
// considered configured; anything less degrades the notifier to a no-op.
type SMTP struct {
	Host      string `yaml:"SMTP_HOST" env:"SMTP_HOST" env-default:""`
	Port      int    `yaml:"SMTP_PORT" env:"SMTP_PORT" env-default:"0"`
	Username  string `yaml:"SMTP_USER" env:"SMTP_USER" env-default:""`
	Password  string `yaml:"SMTP_PASSWORD" env:"SMTP_PASSWORD" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"FROM_EMAIL" env-default:"orders@audiophile.com"`
	FromName  string `yaml:"FROM_NAME" env:"FROM_NAME" env-default:"Audiophile"`
}

func (s *SMTP) Configured() bool {
	return s.Host != "" && s.Port != 0 && s.Username != "" && s.Password != ""
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@audiophile.com"`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Audiophile"`
}

func (s *SendGrid) Configured() bool {
	return s.APIKey != ""
}

const (
	PolicyLenient = "lenient"
	PolicyStrict  = "strict"
)

// Checkout controls the availability-over-consistency tradeoff of order
// creation: "lenient" answers success with the issued order id even when the
// persistence call fails, "strict" surfaces the failure.
type Checkout struct {
	Policy string `yaml:"policy" env:"CHECKOUT_POLICY" env-default:"lenient"`
}

type Telemetry struct {
	Enabled bool `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
}

type Config struct {
	Env           string `yaml:"env" env:"ENV" env-required:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://localhost:3000"`
	HTTPServer    `yaml:"http_server"`
	Database      Database     `yaml:"database"`
	RedisConnect  RedisConnect `yaml:"redis"`
	Cache         CacheConfig  `yaml:"cache"`
	SMTP          SMTP         `yaml:"smtp"`
	SendGrid      SendGrid     `yaml:"sendgrid"`
	Checkout      Checkout     `yaml:"checkout"`
	Telemetry     Telemetry    `yaml:"telemetry"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if cfg.Checkout.Policy != PolicyLenient && cfg.Checkout.Policy != PolicyStrict {
		return nil, fmt.Errorf("invalid checkout policy: %s", cfg.Checkout.Policy)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Password == "" {
		return fmt.Sprintf("redis://%s/%d", r.Host, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Host, r.DB)
}
