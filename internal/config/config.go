package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	GithubPAT   string `env:"GITHUB_PAT"`
	GithubOwner string `env:"GITHUB_OWNER" envDefault:"hcstnb2047"`
	GithubRepo  string `env:"GITHUB_REPO" envDefault:"LifeVault"`
	GithubRef   string `env:"GITHUB_REF" envDefault:"main"`
	// GithubAPIURL overrides https://api.github.com/, e.g. for GitHub Enterprise.
	GithubAPIURL string `env:"GITHUB_API_URL"`

	Addr      string `env:"ADDR" envDefault:":8080"`
	DBPath    string `env:"DB_PATH" envDefault:"lvdash.db"`
	Debug     bool   `env:"DEBUG"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	PollInterval      time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	PollTimeout       time.Duration `env:"POLL_TIMEOUT" envDefault:"10m"`
	RunLookupDelay    time.Duration `env:"RUN_LOOKUP_DELAY" envDefault:"2s"`
	RunLookupAttempts int           `env:"RUN_LOOKUP_ATTEMPTS" envDefault:"3"`
	DispatchCooldown  time.Duration `env:"DISPATCH_COOLDOWN" envDefault:"3s"`

	KnowledgeCacheTTL  time.Duration `env:"KNOWLEDGE_CACHE_TTL" envDefault:"5m"`
	ReadingLogCacheTTL time.Duration `env:"READING_LOG_CACHE_TTL" envDefault:"1m"`
	ReadingLogPath     string        `env:"READING_LOG_PATH" envDefault:"Knowledge/Research/books/reading-log.yaml"`
}

const Prefix = "LVDASH_"

func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given environment instead of the process one when
// environ is non-nil.
func LoadFrom(environ map[string]string) (*Config, error) {
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	durations := map[string]time.Duration{
		"POLL_INTERVAL":    c.PollInterval,
		"POLL_TIMEOUT":     c.PollTimeout,
		"RUN_LOOKUP_DELAY": c.RunLookupDelay,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s%s must be positive, got %s", Prefix, name, d)
		}
	}
	if c.RunLookupAttempts < 1 {
		return fmt.Errorf("%sRUN_LOOKUP_ATTEMPTS must be at least 1", Prefix)
	}
	if c.DispatchCooldown < 0 || c.KnowledgeCacheTTL < 0 || c.ReadingLogCacheTTL < 0 {
		return fmt.Errorf("cooldown and cache TTLs must not be negative")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown %sLOG_FORMAT %q", Prefix, c.LogFormat)
	}
	if c.GithubOwner == "" || c.GithubRepo == "" {
		return fmt.Errorf("%sGITHUB_OWNER and %sGITHUB_REPO are required", Prefix, Prefix)
	}
	return nil
}

func (c *Config) FullName() string {
	return c.GithubOwner + "/" + c.GithubRepo
}
