package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisMediaQueueDB int    `mapstructure:"REDIS_MEDIA_QUEUE_DB"`

	// Itinerary cache TTL in minutes.
	ItineraryCacheTTLMin int `mapstructure:"ITINERARY_CACHE_TTL_MIN"`
	// Resolved media results TTL in hours.
	MediaResultTTLHours int `mapstructure:"MEDIA_RESULT_TTL_HOURS"`

	// Gemini configuration (draft generation, refinement, classification).
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Geocoding provider selection: "amap" or "google".
	GeocoderProvider string `mapstructure:"GEOCODER_PROVIDER"`
	AmapAPIKey       string `mapstructure:"AMAP_API_KEY"`
	GoogleAPIKey     string `mapstructure:"GOOGLE_API_KEY"`

	// Cloudinary mirror for fetched imagery.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_MEDIA_QUEUE_DB", 1)
	viper.SetDefault("ITINERARY_CACHE_TTL_MIN", 60)
	viper.SetDefault("MEDIA_RESULT_TTL_HOURS", 24)
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("GEOCODER_PROVIDER", "amap")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// HasImageryCredential reports whether an imagery provider key is configured.
// Without one, pending media requests are stripped from generated itineraries.
func HasImageryCredential() bool {
	return AppConfig.GoogleAPIKey != ""
}
