package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"shopbot/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Payments []domain.PaymentMethod
}

type TelegramConfig struct {
	// Token is the bot credential. The process refuses to start without it.
	Token string `validate:"required"`
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type AdminConfig struct {
	// IDs is the fixed allow-list of Telegram user identifiers granted
	// access to the admin menu.
	IDs []int64
	// Username is an optional admin handle matched case-insensitively,
	// with or without a leading @.
	Username string
	// Contact is the handle shown to customers in order confirmations.
	Contact string
}

// Load reads configuration from a .env file (if present) and the process
// environment. It returns an error when a required value is missing so
// main can refuse to start.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("ADMIN_CONTACT", "@shop_admin")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			Token: viper.GetString("TELEGRAM_BOT_TOKEN"),
		},
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Admin: AdminConfig{
			IDs:      parseAdminIDs(viper.GetString("ADMIN_IDS")),
			Username: viper.GetString("ADMIN_USERNAME"),
			Contact:  viper.GetString("ADMIN_CONTACT"),
		},
		Payments: DefaultPaymentMethods(),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DSN builds a pgx connection string from the database settings.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.Schema)
}

// DefaultPaymentMethods returns the static payment method list. The set is
// fixed at configuration time; orders keep a copy of the chosen method's
// name and instructions.
func DefaultPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{
			ID:           "card",
			Name:         "Перевод на карту",
			Instructions: "Переведите сумму заказа на карту 2202 2000 0000 0000 и пришлите чек администратору.",
		},
		{
			ID:           "sbp",
			Name:         "СБП",
			Instructions: "Оплатите по номеру телефона +7 900 000-00-00 через СБП и пришлите чек администратору.",
		},
		{
			ID:           "cash",
			Name:         "Наличные",
			Instructions: "Оплата наличными при получении заказа.",
		},
	}
}

// parseAdminIDs parses a comma-separated list of Telegram user IDs.
// Malformed entries are skipped rather than failing startup.
func parseAdminIDs(s string) []int64 {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			log.Printf("Warning: skipping malformed admin id %q: %v", p, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
