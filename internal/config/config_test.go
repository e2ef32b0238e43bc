package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	apperrors "leethub-sync/internal/errors"
)

var allKeys = []string{
	"NOTION_TOKEN", "NOTION_DATABASE_ID", "NOTION_API_URL", "NOTION_VERSION",
	"CHANGED_FILES", "COMMIT_MESSAGE", "CHANGE_SOURCE", "REPO_DIR",
	"FILE_EXTENSIONS", "SKIP_FILES", "PROBLEM_LINK_TEMPLATE", "DRY_RUN",
	"LEETCODE_ENRICH", "LEETCODE_GRAPHQL_URL", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	"DISCORD_WEBHOOK_URL", "REQUEST_TIMEOUT", "REPORT_FILE", "WATCH_SCHEDULE",
}

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("NOTION_TOKEN", "secret_abc")
	t.Setenv("NOTION_DATABASE_ID", "db-123")
	t.Setenv("COMMIT_MESSAGE", "[LeetHub] Two Sum | Difficulty: Easy | Tags: Array")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Notion.BaseURL != defaultNotionURL || cfg.Notion.Version != "2022-06-28" {
		t.Errorf("Notion = %+v", cfg.Notion)
	}
	if cfg.Sync.LinkTemplate != "https://leetcode.com/problems/%s/" {
		t.Errorf("LinkTemplate = %q", cfg.Sync.LinkTemplate)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.Source.Kind != SourceEnv || cfg.Source.RepoDir != "." {
		t.Errorf("Source = %+v", cfg.Source)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "auto" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Sync.DryRun || cfg.LeetCode.Enrich {
		t.Error("optional features should default to off")
	}
	if cfg.Sync.Extensions != nil || cfg.Sync.SkipFiles != nil {
		t.Errorf("lists = %v / %v, want nil to use filter defaults", cfg.Sync.Extensions, cfg.Sync.SkipFiles)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("FILE_EXTENSIONS", ".py, .sql ,")
	t.Setenv("SKIP_FILES", "README.md,TODO.md")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("DRY_RUN", "true")
	t.Setenv("LEETCODE_ENRICH", "1")
	t.Setenv("CHANGED_FILES", "a/b.py\nc/d.go")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]string{".py", ".sql"}, cfg.Sync.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"README.md", "TODO.md"}, cfg.Sync.SkipFiles); diff != "" {
		t.Errorf("SkipFiles mismatch (-want +got):\n%s", diff)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if !cfg.Sync.DryRun || !cfg.LeetCode.Enrich {
		t.Errorf("DryRun = %v, Enrich = %v, want both true", cfg.Sync.DryRun, cfg.LeetCode.Enrich)
	}
	if cfg.Source.ChangedFiles != "a/b.py\nc/d.go" {
		t.Errorf("ChangedFiles = %q", cfg.Source.ChangedFiles)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantKey string
	}{
		{"token", "NOTION_TOKEN", "NOTION_TOKEN"},
		{"database", "NOTION_DATABASE_ID", "NOTION_DATABASE_ID"},
		{"commit message", "COMMIT_MESSAGE", "COMMIT_MESSAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := Load(viper.New(), "")
			if apperrors.CodeOf(err) != apperrors.ErrCodeConfigMissing {
				t.Fatalf("Load() error = %v, want CONFIG_MISSING", err)
			}
			if !apperrors.IsFatal(err) {
				t.Error("missing config should be fatal")
			}
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) || appErr.Message != tt.wantKey+" is required" {
				t.Errorf("error = %v, want message about %s", err, tt.wantKey)
			}
		})
	}
}

func TestLoadGitSourceNeedsNoMessage(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTION_TOKEN", "secret_abc")
	t.Setenv("NOTION_DATABASE_ID", "db-123")

	v := viper.New()
	v.Set("CHANGE_SOURCE", SourceGit)

	cfg, err := Load(v, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source.Kind != SourceGit {
		t.Errorf("Source.Kind = %q, want git", cfg.Source.Kind)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"CHANGE_SOURCE", "svn"},
		{"PROBLEM_LINK_TEMPLATE", "https://leetcode.com/problems/"},
		{"PROBLEM_LINK_TEMPLATE", "https://leetcode.com/problems/%s/%d"},
		{"PROBLEM_LINK_TEMPLATE", "https://leetcode.com/problems/%s/%s"},
		{"PROBLEM_LINK_TEMPLATE", "https://leetcode.com/problems/%s/%"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(viper.New(), "")
			if apperrors.CodeOf(err) != apperrors.ErrCodeConfigInvalid {
				t.Errorf("Load() error = %v, want CONFIG_INVALID", err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTION_TOKEN", "from-env")

	path := filepath.Join(t.TempDir(), "leetsync.yaml")
	content := "notion_token: from-file\nnotion_database_id: db-file\ncommit_message: \"[LeetHub] A | Difficulty: Easy | Tags: B\"\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Notion.Token != "from-env" {
		t.Errorf("Token = %q, environment should override the file", cfg.Notion.Token)
	}
	if cfg.Notion.DatabaseID != "db-file" || cfg.Log.Level != "debug" {
		t.Errorf("file values not applied: %+v %+v", cfg.Notion, cfg.Log)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	if apperrors.CodeOf(err) != apperrors.ErrCodeConfigInvalid {
		t.Errorf("Load() error = %v, want CONFIG_INVALID", err)
	}
}

func TestValidateSchedule(t *testing.T) {
	cfg := &Config{WatchSchedule: "*/10 * * * *"}
	if err := cfg.ValidateSchedule(); err != nil {
		t.Errorf("ValidateSchedule() error = %v", err)
	}

	cfg.WatchSchedule = "every now and then"
	if err := cfg.ValidateSchedule(); apperrors.CodeOf(err) != apperrors.ErrCodeConfigInvalid {
		t.Errorf("ValidateSchedule() error = %v, want CONFIG_INVALID", err)
	}
}

func TestValidLinkTemplate(t *testing.T) {
	tests := []struct {
		tmpl string
		want bool
	}{
		{"https://leetcode.com/problems/%s/", true},
		{"https://leetcode.cn/100%%/%s", true},
		{"https://leetcode.com/problems/", false},
		{"https://leetcode.com/problems/%s/%d", false},
		{"https://leetcode.com/problems/%s/%s", false},
		{"https://leetcode.com/problems/%v", false},
		{"https://leetcode.com/problems/%s%", false},
	}

	for _, tt := range tests {
		if got := validLinkTemplate(tt.tmpl); got != tt.want {
			t.Errorf("validLinkTemplate(%q) = %v, want %v", tt.tmpl, got, tt.want)
		}
	}
}
