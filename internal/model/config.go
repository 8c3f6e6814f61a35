package model

import "time"

// Config is the complete newsbrief configuration. The CLI layer builds one
// from flags, environment and the config file, and passes it into every
// collaborator at construction - core logic never reads ambient state.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http" json:"http"`
	Cache    CacheConfig    `yaml:"cache" json:"cache"`
	Feeds    FeedsConfig    `yaml:"feeds" json:"feeds"`
	GNews    GNewsConfig    `yaml:"gnews" json:"gnews"`
	LLM      LLMConfig      `yaml:"llm" json:"llm"`
	LinkedIn LinkedInConfig `yaml:"linkedin" json:"linkedin"`
	Workflow WorkflowConfig `yaml:"workflow" json:"workflow"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// HTTPConfig controls outbound article and feed requests.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	RatePerHost  float64       `yaml:"rate_per_host" json:"rate_per_host"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// CacheConfig controls the layered feed/article cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// FeedsConfig lists the RSS/Atom sources the collector polls.
type FeedsConfig struct {
	Sources map[string]string `yaml:"sources" json:"sources"` // name -> feed URL
	Hours   int               `yaml:"hours" json:"hours"`     // trailing lookback window
}

// GNewsConfig configures the GNews search API client.
type GNewsConfig struct {
	APIKey     string `yaml:"api_key,omitempty" json:"-"`
	Query      string `yaml:"query" json:"query"`
	MaxResults int    `yaml:"max_results" json:"max_results"`
}

// LLMConfig configures the generation provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider" json:"provider"` // openai, ollama
	Model       string  `yaml:"model" json:"model"`
	APIKey      string  `yaml:"api_key,omitempty" json:"-"`
	BaseURL     string  `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout     int     `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
	Temperature float32 `yaml:"temperature" json:"temperature"`
}

// LinkedInConfig configures the publishing endpoint.
type LinkedInConfig struct {
	AccessToken string `yaml:"access_token,omitempty" json:"-"`
	BaseURL     string `yaml:"base_url" json:"base_url"`
	Timeout     int    `yaml:"timeout" json:"timeout"` // seconds
}

// WorkflowConfig controls the run itself.
type WorkflowConfig struct {
	DryRun              bool   `yaml:"dry_run" json:"dry_run"`
	SkipVerification    bool   `yaml:"skip_verification" json:"skip_verification"`
	MaxRetries          int    `yaml:"max_retries" json:"max_retries"`
	ConfidenceThreshold int    `yaml:"confidence_threshold" json:"confidence_threshold"`
	MaxArticles         int    `yaml:"max_articles" json:"max_articles"`
	ArticleMaxChars     int    `yaml:"article_max_chars" json:"article_max_chars"`
	DraftsDir           string `yaml:"drafts_dir" json:"drafts_dir"`
	LogsDir             string `yaml:"logs_dir" json:"logs_dir"`
}

// OutputConfig controls progress reporting.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultFeeds is the built-in set of vendor blogs the collector polls.
func DefaultFeeds() map[string]string {
	return map[string]string{
		"OpenAI":       "https://openai.com/blog/rss.xml",
		"Anthropic":    "https://www.anthropic.com/news/rss",
		"Google AI":    "https://blog.google/technology/ai/rss/",
		"DeepMind":     "https://deepmind.google/blog/rss.xml",
		"Hugging Face": "https://huggingface.co/blog/feed.xml",
		"Meta AI":      "https://ai.meta.com/blog/rss/",
		"Mistral AI":   "https://mistral.ai/feed.xml",
	}
}

// DefaultConfig returns sensible defaults for all sections.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "newsbrief/0.1 (+https://github.com/pkozlov/newsbrief)",
			MaxBodyBytes: 2_000_000,
			RatePerHost:  2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".newsbrief-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		Feeds: FeedsConfig{
			Sources: DefaultFeeds(),
			Hours:   48,
		},
		GNews: GNewsConfig{
			Query:      "artificial intelligence OR generative AI OR LLM",
			MaxResults: 10,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "",
			Timeout:     60,
			MaxTokens:   4000,
			Temperature: 0.7,
		},
		LinkedIn: LinkedInConfig{
			BaseURL: "https://api.linkedin.com/v2",
			Timeout: 30,
		},
		Workflow: WorkflowConfig{
			DryRun:              true,
			MaxRetries:          3,
			ConfidenceThreshold: 85,
			MaxArticles:         5,
			ArticleMaxChars:     2500,
			DraftsDir:           "drafts",
			LogsDir:             "logs",
		},
	}
}
