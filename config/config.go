package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Store drivers understood by database.OpenStore.
const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Document store.
	StoreDriver  string        `mapstructure:"STORE_DRIVER"`
	StoreTimeout time.Duration `mapstructure:"STORE_TIMEOUT"`

	// Firebase / Firestore.
	FirebaseServiceAccount  string `mapstructure:"FIREBASE_SERVICE_ACCOUNT"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis backs the optional reservation guard.
	ReservationGuard bool   `mapstructure:"RESERVATION_GUARD"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB      int    `mapstructure:"REDIS_LOCK_DB"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	// Proxies whose X-Forwarded-For is believed when resolving client IPs.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`
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
	// Hosting platforms hand the port over as PORT.
	_ = viper.BindEnv("APP_PORT", "APP_PORT", "PORT")

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("STORE_DRIVER", DriverFirestore)
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "finalprojectapi")
	v.SetDefault("RESERVATION_GUARD", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_LOCK_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("TRUSTED_PROXIES", []string{})
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverFirestore:
		if c.FirebaseServiceAccount == "" && c.FirebaseCredentialsFile == "" {
			return fmt.Errorf("missing FIREBASE_SERVICE_ACCOUNT: add the whole service account JSON on a single line")
		}
	case DriverMongo:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the mongo driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.MaxRequestsPerMin <= 0 {
		return fmt.Errorf("MAX_REQUESTS_PER_MIN must be positive, got %d", c.MaxRequestsPerMin)
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
