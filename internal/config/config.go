package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Routing  RoutingConfig
	Planner  PlannerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PlacesCacheTTL time.Duration
	RoutesCacheTTL time.Duration
}

// RoutingConfig - внешний сервис расчёта маршрутов
type RoutingConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
}

// PlannerConfig - константы планировщика туров
type PlannerConfig struct {
	DayBudgetMinutes int     // бюджет времени на день: посещения + переходы
	WalkingSpeed     float64 // метров в минуту
	MaxDays          int
	TablesFile       string // JSON-файл со справочниками, пусто - значения по умолчанию
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PlacesCacheTTL: time.Duration(viper.GetInt("PLACES_CACHE_TTL")) * time.Second,
			RoutesCacheTTL: time.Duration(viper.GetInt("ROUTES_CACHE_TTL")) * time.Second,
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ROUTING_BASE_URL"),
			RequestTimeout: viper.GetInt("ROUTING_REQUEST_TIMEOUT"),
		},
		Planner: PlannerConfig{
			DayBudgetMinutes: viper.GetInt("PLANNER_DAY_BUDGET_MINUTES"),
			WalkingSpeed:     viper.GetFloat64("PLANNER_WALKING_SPEED"),
			MaxDays:          viper.GetInt("PLANNER_MAX_DAYS"),
			TablesFile:       viper.GetString("PLANNER_TABLES_FILE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.PlacesCacheTTL == 0 {
		cfg.Cache.PlacesCacheTTL = 10 * time.Minute
	}
	if cfg.Cache.RoutesCacheTTL == 0 {
		cfg.Cache.RoutesCacheTTL = 2 * time.Minute
	}
	if cfg.Routing.RequestTimeout == 0 {
		cfg.Routing.RequestTimeout = 15
	}
	if cfg.Planner.DayBudgetMinutes == 0 {
		cfg.Planner.DayBudgetMinutes = 480
	}
	if cfg.Planner.WalkingSpeed == 0 {
		cfg.Planner.WalkingSpeed = 80
	}
	if cfg.Planner.MaxDays == 0 {
		cfg.Planner.MaxDays = 5
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
