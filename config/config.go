package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int   `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int   `mapstructure:"REDIS_QUEUE_DB"`

	// Availability window fallbacks, used when no settings document
	// exists in the database. These are an explicit, documented policy
	// rather than hardcoded constants in the engine.
	AvailabilityWindowDays          int `mapstructure:"AVAILABILITY_WINDOW_DAYS"`
	AvailabilityWorkingHoursPerDay  int `mapstructure:"AVAILABILITY_WORKING_HOURS_PER_DAY"`
	AvailabilitySlotDurationMinutes int `mapstructure:"AVAILABILITY_SLOT_DURATION_MINUTES"`
	AvailabilityStartMinutesUTC     int `mapstructure:"AVAILABILITY_START_MINUTES_UTC"`
	AvailabilityMaxDaysToShow       int `mapstructure:"AVAILABILITY_MAX_DAYS_TO_SHOW"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AVAILABILITY_WINDOW_DAYS", 28)
	viper.SetDefault("AVAILABILITY_WORKING_HOURS_PER_DAY", 8)
	viper.SetDefault("AVAILABILITY_SLOT_DURATION_MINUTES", 60)
	viper.SetDefault("AVAILABILITY_START_MINUTES_UTC", 480)
	viper.SetDefault("AVAILABILITY_MAX_DAYS_TO_SHOW", 7)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}
