package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourceBrowser  = "browser"
	SourcePostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Source     Source     `yaml:"source"`
	Database   Database   `yaml:"database"`
	Watch      Watch      `yaml:"watch"`
	// Palette overrides the default schedule colors when non-empty.
	Palette []string `yaml:"palette" env:"PALETTE" env-separator:"," validate:"dive,hexcolor|rgb|rgba|hsl|hsla|alpha"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Source selects where the listing table is read from.
type Source struct {
	Kind string `yaml:"kind" env:"SOURCE_KIND" env-default:"file"`
	// Path is used by the file source.
	Path string `yaml:"path" env:"SOURCE_PATH"`
	// URL is used by the http and browser sources.
	URL string `yaml:"url" env:"SOURCE_URL"`
	// Selector locates the listing table inside the page.
	Selector string        `yaml:"selector" env:"SOURCE_SELECTOR" env-default:"#tblSearchResults"`
	Timeout  time.Duration `yaml:"timeout" env:"SOURCE_TIMEOUT" env-default:"30s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"listings"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	// Query must select the listing columns in table order.
	Query   string `yaml:"query" env:"DB_QUERY" env-default:"SELECT '', '', name, '', date, time, location, capacity FROM listings ORDER BY id"`
	Channel string `yaml:"channel" env:"DB_CHANNEL" env-default:"listings_changed"`
}

type Watch struct {
	Schedule string `yaml:"schedule" env:"WATCH_SCHEDULE" env-default:"@every 5s"`
}

// Load reads configPath, applies env overrides and validates the result.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}
