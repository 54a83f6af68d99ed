package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the sync job settings, read from the environment.
type Config struct {
	// ListingURL is the opys index page of the digitized fond.
	ListingURL string `env:"PARAFII_LISTING_URL" env-default:"https://rv.archives.gov.ua/ocifrovani-sprav?period=5&fund=5"`

	// StorePath is the artifact path inside the store.
	StorePath string `env:"PARAFII_STORE_PATH" env-default:"data/fond_P720.json"`

	// GitHubRepo is the owner/name of the data repository.
	GitHubRepo   string `env:"PARAFII_GITHUB_REPO"`
	GitHubBranch string `env:"PARAFII_GITHUB_BRANCH" env-default:"main"`
	GitHubToken  string `env:"PARAFII_GITHUB_TOKEN"`

	FetchTimeout     time.Duration `env:"PARAFII_FETCH_TIMEOUT" env-default:"30s"`
	FetchConcurrency int           `env:"PARAFII_FETCH_CONCURRENCY" env-default:"1"`
	FetchRate        float64       `env:"PARAFII_FETCH_RATE" env-default:"1"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}

// SplitRepo splits GitHubRepo into owner and name.
func (c *Config) SplitRepo() (owner, name string, err error) {
	if c.GitHubRepo == "" {
		return "", "", ErrMissingRepo
	}
	owner, name, ok := strings.Cut(c.GitHubRepo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadRepo, c.GitHubRepo)
	}
	return owner, name, nil
}
