package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	err := Upstream("notion", 400, "validation_error: Slug is not a property")
	got := err.Error()

	for _, want := range []string{"UPSTREAM_ERROR", "notion request failed", "status 400", "validation_error"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, want it to contain %q", got, want)
		}
	}
}

func TestCodeOfWrapped(t *testing.T) {
	base := ConfigMissing("NOTION_TOKEN")
	wrapped := fmt.Errorf("load config: %w", base)

	if got := CodeOf(wrapped); got != ErrCodeConfigMissing {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeConfigMissing)
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing config", ConfigMissing("NOTION_DATABASE_ID"), true},
		{"invalid config", ConfigInvalid("WATCH_SCHEDULE", "expected 5 fields"), true},
		{"change source", New(ErrCodeChangeSource, "git failed"), true},
		{"upstream", Upstream("notion", 500, ""), false},
		{"transport", TransportFailed("notion", stderrors.New("reset")), false},
		{"plain", stderrors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransportFailedUnwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := TransportFailed("notion", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}
