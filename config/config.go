package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between deployments (API origin, upload account)
// - default: Values common across all environments (API prefix, lookahead, log)
// -----------------------------------------------------------------------------

type Config struct {
	API      APIConfig
	Upload   UploadConfig
	Session  SessionConfig
	Calendar CalendarConfig
	Log      LogConfig
}

type APIConfig struct {
	BaseURL string `envconfig:"API_BASE_URL" required:"true"`
	Prefix  string `envconfig:"API_PREFIX" default:"/api/v1"`
}

type UploadConfig struct {
	CloudName    string `envconfig:"CLOUDINARY_NAME" required:"true"`
	UploadPreset string `envconfig:"CLOUDINARY_PRESET_NAME" required:"true"`
}

type SessionConfig struct {
	File string `envconfig:"SESSION_FILE" default:".camerental/session.json"`
}

type CalendarConfig struct {
	LookaheadDays int `envconfig:"CALENDAR_LOOKAHEAD_DAYS" default:"60"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func (c APIConfig) Origin() string {
	return c.BaseURL + c.Prefix
}

// LoadConfig reads an optional .env file and then the process environment.
// A missing .env is not an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Prefix:  "/api/v1",
		},
		Upload: UploadConfig{
			CloudName:    "test-cloud",
			UploadPreset: "test-preset",
		},
		Session: SessionConfig{
			File: ".camerental/session.json",
		},
		Calendar: CalendarConfig{
			LookaheadDays: 60,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
