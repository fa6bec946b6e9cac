package config

import (
	"log"
	"strings"
	"time"
	_ "time/tzdata" // report time zones must resolve in minimal containers

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the MongoDB connection and the reporting engine.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	MONGO_URI=mongodb://localhost:27017
//	MONGO_DB=business-back
//	REPORT_SOURCE=live
//	REPORT_OCCUPANCY_POLICY=trailing_30d
//	REPORT_TIMEZONE=Asia/Seoul
//	AUTH_JWT_SECRET=change-me
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Mongo     MongoConfig     // MongoDB connection settings
	Report    ReportConfig    // Reporting engine behavior
	Auth      AuthConfig      // Bearer token verification
	RateLimit RateLimitConfig // Request throttling
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port           string   // The TCP port the HTTP server will listen on (e.g., "8080")
	AllowedOrigins []string // Origins allowed by CORS (the business front-end)
}

// MongoConfig defines connection details for MongoDB.
//
// Fields:
//   - URI: connection string understood by the mongo driver.
//   - Database: database holding the hotels/rooms/bookings/reviews collections.
//   - Timeout: connect and ping timeout.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// ReportConfig drives the reporting engine.
//
// Fields:
//   - Source: "live" (MongoDB) or "fixture" (embedded or file-based demo data).
//   - FixturePath: optional Extended JSON bundle; empty means the embedded demo bundle.
//   - OccupancyPolicy: "trailing_30d" or "point_in_time".
//   - Timezone: IANA zone used for month/day windows and chart buckets.
//   - RecentLimit: size of the recent bookings/reviews lists.
type ReportConfig struct {
	Source          string
	FixturePath     string
	OccupancyPolicy string
	Timezone        string
	RecentLimit     int
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	JWTSecret    string
	RequiredRole string
}

// RateLimitConfig configures the per-client request limiter.
//
// When RedisURL is empty the limiter keeps its counters in memory.
type RateLimitConfig struct {
	PerMinute int
	RedisURL  string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "business-back")
	viper.SetDefault("MONGO_TIMEOUT_SECONDS", 10)

	viper.SetDefault("REPORT_SOURCE", "live")
	viper.SetDefault("REPORT_FIXTURE_PATH", "")
	viper.SetDefault("REPORT_OCCUPANCY_POLICY", "trailing_30d")
	viper.SetDefault("REPORT_TIMEZONE", "Asia/Seoul")
	viper.SetDefault("REPORT_RECENT_LIMIT", 5)

	// AUTH_JWT_SECRET has no default: every deployment signs with its own key.
	viper.SetDefault("AUTH_REQUIRED_ROLE", "business")

	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("REDIS_URL", "")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
			Timeout:  time.Duration(viper.GetInt("MONGO_TIMEOUT_SECONDS")) * time.Second,
		},
		Report: ReportConfig{
			Source:          strings.ToLower(viper.GetString("REPORT_SOURCE")),
			FixturePath:     viper.GetString("REPORT_FIXTURE_PATH"),
			OccupancyPolicy: strings.ToLower(viper.GetString("REPORT_OCCUPANCY_POLICY")),
			Timezone:        viper.GetString("REPORT_TIMEZONE"),
			RecentLimit:     viper.GetInt("REPORT_RECENT_LIMIT"),
		},
		Auth: AuthConfig{
			JWTSecret:    viper.GetString("AUTH_JWT_SECRET"),
			RequiredRole: viper.GetString("AUTH_REQUIRED_ROLE"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RedisURL:  viper.GetString("REDIS_URL"),
		},
	}

	validateConfig()
}

// Location resolves the configured report time zone.
//
// An unknown zone was already rejected by validateConfig, so the UTC fallback
// only applies to hand-built configs in tests.
func (c ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil || c.Timezone == "" {
		return time.UTC
	}
	return loc
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing or invalid ones in a slice.
//   - If any are found, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	switch AppConfig.Report.Source {
	case "live":
		if AppConfig.Mongo.URI == "" {
			missing = append(missing, "MONGO_URI")
		}
		if AppConfig.Mongo.Database == "" {
			missing = append(missing, "MONGO_DB")
		}
	case "fixture":
	default:
		missing = append(missing, "REPORT_SOURCE (live|fixture)")
	}
	switch AppConfig.Report.OccupancyPolicy {
	case "trailing_30d", "point_in_time":
	default:
		missing = append(missing, "REPORT_OCCUPANCY_POLICY (trailing_30d|point_in_time)")
	}
	if _, err := time.LoadLocation(AppConfig.Report.Timezone); err != nil || AppConfig.Report.Timezone == "" {
		missing = append(missing, "REPORT_TIMEZONE")
	}
	if AppConfig.Report.RecentLimit <= 0 {
		missing = append(missing, "REPORT_RECENT_LIMIT")
	}
	if AppConfig.Auth.JWTSecret == "" {
		missing = append(missing, "AUTH_JWT_SECRET")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
