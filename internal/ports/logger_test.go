package ports

import (
	"context"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestF(t *testing.T) {
	f := F("step", "cargo")
	if f.Key != "step" || f.Value != "cargo" {
		t.Errorf("F() = %+v", f)
	}
}

func TestNopLogger_Discards(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug(context.Background(), "ignored")
	logger.Info(context.Background(), "ignored", F("k", "v"))
	logger.With(F("k", "v")).Error(context.Background(), "ignored")

	if logger.Level() != LevelInfo {
		t.Errorf("Level() = %v, want info default", logger.Level())
	}
	logger.SetLevel(LevelError)
	if logger.Level() != LevelError {
		t.Errorf("Level() = %v after SetLevel", logger.Level())
	}
}
