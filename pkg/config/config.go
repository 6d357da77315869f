package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" env-default:"localhost:5432"`
	Username string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" env-default:"twentyfourseven"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type Config struct {
	APIAddress     string        `env:"API_ADDRESS" env-default:":8080"`
	JWTSecret      string        `env:"JWT_SECRET"`
	Timezone       string        `env:"TIMEZONE" env-default:"Local"`
	WeekStart      string        `env:"WEEK_START" env-default:"sunday"`
	GapThreshold   time.Duration `env:"GAP_THRESHOLD" env-default:"5m"`
	HistoryLimit   int           `env:"HISTORY_LIMIT" env-default:"50"`
	ActivityIdle   time.Duration `env:"ACTIVITY_IDLE" env-default:"30m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
	LocalStorePath string        `env:"LOCAL_STORE_PATH"`
	MigrationsDir  string        `env:"MIGRATIONS_DIR" env-default:"./migrations"`
	Postgres       PostgresConfig
	Log            LogConfig
}

// New loads ./configs/.env once and returns the shared config.
func New() *Config {
	once.Do(func() {
		cfg, err := Load("./configs/.env")
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads an optional .env file into the environment and parses the environment into Config.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.New("parsing envs error: " + err.Error())
	}
	if cfg.LocalStorePath == "" {
		cfg.LocalStorePath = defaultLocalStorePath()
	}
	return &cfg, nil
}

func (c *Config) Location() *time.Location {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || tz == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(strings.TrimSpace(c.WeekStart), "monday") {
		return time.Monday
	}
	return time.Sunday
}

func defaultLocalStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "twentyfourseven.db"
	}
	return filepath.Join(dir, "twentyfourseven", "store.db")
}
