package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// EnvConfigPath переменная окружения, переопределяющая путь к config.toml
const EnvConfigPath = "CONFIG_PATH"

var (
	// ErrReadConfig возвращается при ошибке чтения/парсинга файла
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid config")
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Container ContainerConfig `toml:"container"`
	Demo      DemoConfig      `toml:"demo"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ContainerConfig геометрия контейнера и тарифы, общие для всех рейсов
type ContainerConfig struct {
	Rows       int               `toml:"rows"`
	Cols       int               `toml:"cols"`
	Envelope   DimensionsConfig  `toml:"envelope"`
	SlotUnit   DimensionsConfig  `toml:"slot_unit"`
	PriceTiers []PriceTierConfig `toml:"price_tiers"`
}

type DimensionsConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Length float64 `toml:"length"`
}

func (d DimensionsConfig) ToDomain() domain.Dimensions {
	return domain.Dimensions{Width: d.Width, Height: d.Height, Length: d.Length}
}

type PriceTierConfig struct {
	UpToCell int     `toml:"up_to_cell"`
	Price    float64 `toml:"price"`
}

// Tiers возвращает тарифы, отсортированные по порогу
func (c ContainerConfig) Tiers() []domain.PriceTier {
	tiers := make([]domain.PriceTier, len(c.PriceTiers))
	for i, t := range c.PriceTiers {
		tiers[i] = domain.PriceTier{UpToCell: t.UpToCell, Price: t.Price}
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].UpToCell < tiers[j].UpToCell })
	return tiers
}

// DemoConfig генерация демо-рейсов при старте
type DemoConfig struct {
	Enabled       bool     `toml:"enabled"`
	MonthsAhead   int      `toml:"months_ahead"`
	OccupancyRate float64  `toml:"occupancy_rate"`
	Routes        []string `toml:"routes"`
}

// Load читает конфигурацию из TOML файла.
// Если задана переменная CONFIG_PATH, используется она.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах)
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию; поля из файла их перекрывают
func Default() *Config {
	tiers := make([]PriceTierConfig, len(domain.DefaultPriceTiers))
	for i, t := range domain.DefaultPriceTiers {
		tiers[i] = PriceTierConfig{UpToCell: t.UpToCell, Price: t.Price}
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "container_slots",
		},
		Container: ContainerConfig{
			Rows: domain.DefaultGridRows,
			Cols: domain.DefaultGridCols,
			Envelope: DimensionsConfig{
				Width:  domain.DefaultContainerEnvelope.Width,
				Height: domain.DefaultContainerEnvelope.Height,
				Length: domain.DefaultContainerEnvelope.Length,
			},
			SlotUnit: DimensionsConfig{
				Width:  domain.DefaultSlotUnit.Width,
				Height: domain.DefaultSlotUnit.Height,
				Length: domain.DefaultSlotUnit.Length,
			},
			PriceTiers: tiers,
		},
		Demo: DemoConfig{
			MonthsAhead:   3,
			OccupancyRate: 0.3,
			Routes:        []string{"Shanghai → Saint Petersburg"},
		},
	}
}

// Validate проверяет значения, которые нельзя исправить дефолтами
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	if c.Container.Rows <= 0 || c.Container.Cols <= 0 {
		return fmt.Errorf("%w: container.rows and container.cols must be positive", ErrInvalidConfig)
	}

	if !c.Container.Envelope.ToDomain().IsPositive() || !c.Container.SlotUnit.ToDomain().IsPositive() {
		return fmt.Errorf("%w: container envelope and slot unit must be positive", ErrInvalidConfig)
	}

	if len(c.Container.PriceTiers) == 0 {
		return fmt.Errorf("%w: at least one container.price_tiers entry is required", ErrInvalidConfig)
	}
	for _, t := range c.Container.PriceTiers {
		if t.UpToCell <= 0 || t.Price < 0 {
			return fmt.Errorf("%w: price tier up_to_cell must be positive and price non-negative", ErrInvalidConfig)
		}
	}

	if c.Demo.OccupancyRate < 0 || c.Demo.OccupancyRate > 1 {
		return fmt.Errorf("%w: demo.occupancy_rate must be in [0, 1]", ErrInvalidConfig)
	}

	if c.Demo.Enabled && len(c.Demo.Routes) == 0 {
		return fmt.Errorf("%w: demo.routes must not be empty when demo is enabled", ErrInvalidConfig)
	}

	return nil
}
