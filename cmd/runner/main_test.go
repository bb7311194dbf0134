package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-runner/internal/storage"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOpenStoreEmptyPathIsMemory(t *testing.T) {
	store := openStore("", discardLogger())
	defer store.Close()

	if _, ok := store.(*storage.Memory); !ok {
		t.Fatalf("openStore(\"\") = %T, want *storage.Memory", store)
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.db")
	store := openStore(path, discardLogger())
	defer store.Close()

	if _, ok := store.(*storage.Store); !ok {
		t.Fatalf("openStore(%q) = %T, want *storage.Store", path, store)
	}
	if err := store.SetHighScore(12); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	if got, _ := store.HighScore(); got != 12 {
		t.Errorf("HighScore = %d, want 12", got)
	}
}

func TestLoadConfigAppliesDifficulty(t *testing.T) {
	defer func(d, c string) { flagDifficulty, flagConfig = d, c }(flagDifficulty, flagConfig)

	tests := []struct {
		difficulty string
		margin     float64
		wantErr    bool
	}{
		{"", 25, false},
		{"easy", 28, false},
		{"normal", 25, false},
		{"hard", 20, false},
		{"nightmare", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			flagDifficulty = tt.difficulty
			flagConfig = ""

			cfg, err := loadConfig(discardLogger())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if cfg.Collision.Margin != tt.margin {
				t.Errorf("margin = %v, want %v", cfg.Collision.Margin, tt.margin)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(tt.input), &out, "x.db"); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "x.db") {
			t.Errorf("prompt %q does not name the database", out.String())
		}
	}
}
