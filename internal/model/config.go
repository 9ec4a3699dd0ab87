package model

import "time"

// Config is the complete casetender configuration.
// Hierarchy: CLI flags > CASETENDER_* env vars > config file > defaults.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	HTTP   HTTPConfig   `yaml:"http" mapstructure:"http"`
	Audit  AuditConfig  `yaml:"audit" mapstructure:"audit"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
}

// PathsConfig locates the documentation repository artifacts.
type PathsConfig struct {
	CasesFile  string `yaml:"cases_file" mapstructure:"cases_file"`   // case store JSON
	DocsFile   string `yaml:"docs_file" mapstructure:"docs_file"`     // navigation config JSON
	StoriesDir string `yaml:"stories_dir" mapstructure:"stories_dir"` // output dir for MDX fragments
}

// HTTPConfig controls outbound HTTP behavior.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CheckTimeout time.Duration `yaml:"check_timeout" mapstructure:"check_timeout"` // per HEAD check
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// AuditConfig controls the link auditor.
type AuditConfig struct {
	BaseURL       string   `yaml:"base_url" mapstructure:"base_url"`
	DocsPrefix    string   `yaml:"docs_prefix" mapstructure:"docs_prefix"`
	Pages         []string `yaml:"pages" mapstructure:"pages"`
	RatePerSecond float64  `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	RespectRobots bool     `yaml:"respect_robots" mapstructure:"respect_robots"`
	TopOffenders  int      `yaml:"top_offenders" mapstructure:"top_offenders"`
}

// CacheConfig controls fetch/check caching in the auditor.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // empty = memory only
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// LLMConfig controls the optional summary polish step.
// The deterministic pipeline never depends on it.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "", "openai", "ollama"
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"` // from env only, never persisted
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultPages is the production page list audited when no config overrides it.
var DefaultPages = []string{
	"/docs/administrative-check/faq",
	"/docs/administrative-check/consulates",
	"/docs/administrative-check/timelines",
	"/docs/administrative-check/mandamus",
	"/docs/administrative-check/ds-5535",
	"/docs/administrative-check/tal-mantis",
	"/docs/administrative-check/expedite",
	"/docs/administrative-check/congressional-inquiry",
	"/docs/administrative-check/stem-publications",
	"/docs/success-stories",
	"/docs/success-stories/premium",
	"/docs/success-stories/cases-preview",
	"/docs/success-stories/self-prepared",
	"/docs/success-stories/with-rfe",
	"/docs/success-stories/by-center/nebraska",
	"/docs/success-stories/by-center/vermont",
	"/docs/success-stories/by-center/texas",
	"/docs/community",
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			CasesFile:  "data/cases.json",
			DocsFile:   "docs.json",
			StoriesDir: "success-stories",
		},
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			CheckTimeout: 10 * time.Second,
			UserAgent:    "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) LinkAudit/1.0",
			MaxBodyBytes: 2_000_000,
		},
		Audit: AuditConfig{
			BaseURL:       "https://www.o1eb1.com",
			DocsPrefix:    "/docs",
			Pages:         append([]string(nil), DefaultPages...),
			RatePerSecond: 4,
			RateBurst:     2,
			TopOffenders:  10,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 300,
		},
	}
}
