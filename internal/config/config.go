package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the storefront service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Shop     ShopConfig     `yaml:"shop"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

// StorageConfig selects the backing store. The mongo driver mirrors the
// hosted document store the storefront was built against; postgres is
// the alternative for self-hosted deployments.
type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr              string `yaml:"addr"`
	CartTTLHours      int    `yaml:"cart_ttl_hours"`
	CatalogTTLMinutes int    `yaml:"catalog_ttl_minutes"`
}

type RabbitMQConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ShopConfig carries the storefront business rules.
type ShopConfig struct {
	Timezone      string      `yaml:"timezone"`
	Currency      string      `yaml:"currency"`
	WhatsAppPhone string      `yaml:"whatsapp_phone"`
	Promo         PromoConfig `yaml:"promo"`
	Slots         SlotsConfig `yaml:"slots"`
}

type PromoConfig struct {
	Code        string `yaml:"code"`
	MinSubtotal int64  `yaml:"min_subtotal"`
	Discount    int64  `yaml:"discount"`
}

type SlotsConfig struct {
	MinLeadHours    int `yaml:"min_lead_hours"`
	HorizonHours    int `yaml:"horizon_hours"`
	WindowStartHour int `yaml:"window_start_hour"`
	WindowEndHour   int `yaml:"window_end_hour"`
	StepMinutes     int `yaml:"step_minutes"`
}

// Load reads configuration from a YAML file and validates it.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 3000
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "mongo"
	}
	if c.Redis.CartTTLHours == 0 {
		c.Redis.CartTTLHours = 72
	}
	if c.Redis.CatalogTTLMinutes == 0 {
		c.Redis.CatalogTTLMinutes = 15
	}
	if c.Shop.Timezone == "" {
		c.Shop.Timezone = "Asia/Kolkata"
	}
	if c.Shop.Currency == "" {
		c.Shop.Currency = "₹"
	}
	if c.Shop.Slots.MinLeadHours == 0 {
		c.Shop.Slots.MinLeadHours = 3
	}
	if c.Shop.Slots.HorizonHours == 0 {
		c.Shop.Slots.HorizonHours = 72
	}
	if c.Shop.Slots.WindowStartHour == 0 {
		c.Shop.Slots.WindowStartHour = 13
	}
	if c.Shop.Slots.WindowEndHour == 0 {
		c.Shop.Slots.WindowEndHour = 23
	}
	if c.Shop.Slots.StepMinutes == 0 {
		c.Shop.Slots.StepMinutes = 30
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "mongo", "postgres":
	default:
		return fmt.Errorf("storage.driver must be mongo or postgres, got %q", c.Storage.Driver)
	}
	s := c.Shop.Slots
	if s.WindowStartHour < 0 || s.WindowEndHour > 23 || s.WindowStartHour > s.WindowEndHour {
		return fmt.Errorf("shop.slots window [%d,%d] is not a valid hour range", s.WindowStartHour, s.WindowEndHour)
	}
	if s.StepMinutes <= 0 || 60%s.StepMinutes != 0 {
		return fmt.Errorf("shop.slots.step_minutes must divide an hour, got %d", s.StepMinutes)
	}
	if _, err := c.Shop.Location(); err != nil {
		return fmt.Errorf("invalid shop.timezone: %w", err)
	}
	return nil
}

// Location resolves the shop timezone.
func (s ShopConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// DatabaseURL returns a PostgreSQL connection URL.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Storage.Postgres.User, c.Storage.Postgres.Password,
		c.Storage.Postgres.Host, c.Storage.Postgres.Port, c.Storage.Postgres.Database)
}

// RabbitMQURL returns an AMQP connection URL.
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

// CartTTL is how long an idle session cart is kept in redis.
func (c *Config) CartTTL() time.Duration {
	return time.Duration(c.Redis.CartTTLHours) * time.Hour
}

// CatalogTTL is the menu cache lifetime.
func (c *Config) CatalogTTL() time.Duration {
	return time.Duration(c.Redis.CatalogTTLMinutes) * time.Minute
}
