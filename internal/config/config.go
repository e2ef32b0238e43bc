package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	apperrors "leethub-sync/internal/errors"
)

// Change sources.
const (
	SourceEnv = "env"
	SourceGit = "git"
)

// Config contains runtime configuration values.
type Config struct {
	Notion   NotionConfig
	Sync     SyncConfig
	Source   SourceConfig
	LeetCode LeetCodeConfig
	Log      LogConfig

	DiscordWebhookURL string
	RequestTimeout    time.Duration
	ReportFile        string
	WatchSchedule     string
}

// NotionConfig holds the target database and API settings.
type NotionConfig struct {
	Token      string
	DatabaseID string
	BaseURL    string
	Version    string
}

// SyncConfig controls which files count and how new records are built.
type SyncConfig struct {
	Extensions   []string
	SkipFiles    []string
	LinkTemplate string
	DryRun       bool
}

// SourceConfig selects where the commit comes from.
type SourceConfig struct {
	Kind         string // "env" or "git"
	ChangedFiles string
	CommitMsg    string
	RepoDir      string
}

// LeetCodeConfig controls optional problem enrichment.
type LeetCodeConfig struct {
	Enrich   bool
	Endpoint string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "json", "text" or "auto"
	File   string
}

const (
	defaultNotionURL     = "https://api.notion.com/v1"
	defaultNotionVersion = "2022-06-28"
	defaultLinkTemplate  = "https://leetcode.com/problems/%s/"
	defaultGraphQL       = "https://leetcode.com/graphql"
	defaultTimeout       = 30 * time.Second
	defaultSchedule      = "*/5 * * * *" // every five minutes
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("NOTION_API_URL", defaultNotionURL)
	v.SetDefault("NOTION_VERSION", defaultNotionVersion)
	v.SetDefault("PROBLEM_LINK_TEMPLATE", defaultLinkTemplate)
	v.SetDefault("REQUEST_TIMEOUT", defaultTimeout)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "auto")
	v.SetDefault("CHANGE_SOURCE", SourceEnv)
	v.SetDefault("REPO_DIR", ".")
	v.SetDefault("LEETCODE_GRAPHQL_URL", defaultGraphQL)
	v.SetDefault("WATCH_SCHEDULE", defaultSchedule)
}

// Load builds a Config from an optional .env file, the environment, any
// flags bound on v and, when configFile is set, a config file.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// Try to load .env file (ignore errors - it's optional)
	_ = godotenv.Load(".env")

	SetDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.ConfigInvalid("config file", err.Error())
		}
	}

	cfg := &Config{
		Notion: NotionConfig{
			Token:      strings.TrimSpace(v.GetString("NOTION_TOKEN")),
			DatabaseID: strings.TrimSpace(v.GetString("NOTION_DATABASE_ID")),
			BaseURL:    v.GetString("NOTION_API_URL"),
			Version:    v.GetString("NOTION_VERSION"),
		},
		Sync: SyncConfig{
			Extensions:   splitList(v.GetString("FILE_EXTENSIONS")),
			SkipFiles:    splitList(v.GetString("SKIP_FILES")),
			LinkTemplate: v.GetString("PROBLEM_LINK_TEMPLATE"),
			DryRun:       v.GetBool("DRY_RUN"),
		},
		Source: SourceConfig{
			Kind:         strings.ToLower(v.GetString("CHANGE_SOURCE")),
			ChangedFiles: v.GetString("CHANGED_FILES"),
			CommitMsg:    v.GetString("COMMIT_MESSAGE"),
			RepoDir:      v.GetString("REPO_DIR"),
		},
		LeetCode: LeetCodeConfig{
			Enrich:   v.GetBool("LEETCODE_ENRICH"),
			Endpoint: v.GetString("LEETCODE_GRAPHQL_URL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			File:   v.GetString("LOG_FILE"),
		},
		DiscordWebhookURL: v.GetString("DISCORD_WEBHOOK_URL"),
		RequestTimeout:    v.GetDuration("REQUEST_TIMEOUT"),
		ReportFile:        v.GetString("REPORT_FILE"),
		WatchSchedule:     v.GetString("WATCH_SCHEDULE"),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required keys. It runs before any network activity.
func (c *Config) Validate() error {
	if c.Notion.Token == "" {
		return apperrors.ConfigMissing("NOTION_TOKEN")
	}
	if c.Notion.DatabaseID == "" {
		return apperrors.ConfigMissing("NOTION_DATABASE_ID")
	}

	switch c.Source.Kind {
	case SourceEnv:
		if strings.TrimSpace(c.Source.CommitMsg) == "" {
			return apperrors.ConfigMissing("COMMIT_MESSAGE")
		}
	case SourceGit:
	default:
		return apperrors.ConfigInvalid("CHANGE_SOURCE", fmt.Sprintf("unknown source %q", c.Source.Kind))
	}

	if !validLinkTemplate(c.Sync.LinkTemplate) {
		return apperrors.ConfigInvalid("PROBLEM_LINK_TEMPLATE", "must contain exactly one %s and no other verbs (use %% for a literal percent)")
	}

	return nil
}

// ValidateSchedule checks the watch cron expression.
func (c *Config) ValidateSchedule() error {
	if _, err := cron.ParseStandard(c.WatchSchedule); err != nil {
		return apperrors.ConfigInvalid("WATCH_SCHEDULE", err.Error())
	}
	return nil
}

// validLinkTemplate reports whether tmpl has exactly one %s verb and no
// other formatting verbs. %% is allowed.
func validLinkTemplate(tmpl string) bool {
	slugs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 == len(tmpl) {
			return false
		}
		i++
		switch tmpl[i] {
		case '%':
		case 's':
			slugs++
		default:
			return false
		}
	}
	return slugs == 1
}

func splitList(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
