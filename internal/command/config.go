package command

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the connection settings for the question store.
type Config struct {
	BaseURL string
	Token   string
}

// LoadConfig reads connection settings from the environment, loading a
// .env file first when one exists in the working directory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL: os.Getenv("THREADVIEW_API_URL"),
		Token:   os.Getenv("THREADVIEW_TOKEN"),
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("THREADVIEW_API_URL is not set")
	}
	return cfg, nil
}
