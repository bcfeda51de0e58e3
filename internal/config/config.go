package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Admin      Admin      `yaml:"admin"`
}

type HTTPServer struct {
	Address            string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4000"`
	Timeout            time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AuthRatePerMinute  int           `yaml:"auth_rate_per_minute" env:"AUTH_RATE_PER_MINUTE" env-default:"20"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"event_mgmt"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"168h"`
	Issuer    string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"college-events"`
}

// Admin holds the credentials of the account seeded when no admin exists.
type Admin struct {
	Name     string `yaml:"name" env:"DEFAULT_ADMIN_NAME" env-default:"Admin"`
	Email    string `yaml:"email" env:"DEFAULT_ADMIN_EMAIL" env-default:"admin@example.com"`
	Password string `yaml:"password" env:"DEFAULT_ADMIN_PASSWORD" env-default:"Admin@12345"`
}

// URL returns the connection string understood by both lib/pq and
// golang-migrate.
func (d Database) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}

	return u.String()
}

// Load reads the YAML file at path, if any, and then the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// ResolvePath returns path, or CONFIG_PATH when path is empty.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}

	return os.Getenv("CONFIG_PATH")
}
