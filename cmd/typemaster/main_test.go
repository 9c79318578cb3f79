package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/typemaster/internal/config"
)

func TestConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typemaster", "config.toml")
	if err := writeConfigTemplate(path); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if _, err := config.LoadConfig(path); err != nil {
		t.Fatalf("commented template should load: %v", err)
	}

	// Every commented key must be one LoadConfig accepts.
	var lines []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		lines = append(lines, line)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write uncommented: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("uncommented template should load: %v", err)
	}
	if cfg.Game.Lives == nil || *cfg.Game.Lives != defaultGameLives {
		t.Fatalf("expected game.lives %d, got %v", defaultGameLives, cfg.Game.Lives)
	}
	if cfg.Practice.PunctSet == nil || *cfg.Practice.PunctSet != defaultPunctSet {
		t.Fatalf("unexpected punct-set: %v", cfg.Practice.PunctSet)
	}
}

func TestWriteConfigTemplateKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nlives = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := writeConfigTemplate(path); err != nil {
		t.Fatalf("write template: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(raw) != "[game]\nlives = 5\n" {
		t.Fatalf("existing config was overwritten: %q", raw)
	}
}

func TestValidatePractice(t *testing.T) {
	defer func(w int, c, p float64, s string) {
		practiceWords, practiceCaps, practicePunct, practicePunctSet = w, c, p, s
	}(practiceWords, practiceCaps, practicePunct, practicePunctSet)

	practiceWords, practiceCaps, practicePunct, practicePunctSet = 10, 0.2, 0.2, ".,"
	if err := validatePractice(); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}
	practiceCaps = 1.5
	if err := validatePractice(); err == nil {
		t.Fatalf("expected caps error")
	}
	practiceCaps, practicePunctSet = 0.2, ""
	if err := validatePractice(); err == nil {
		t.Fatalf("expected punct-set error")
	}
}

func TestKnownLayout(t *testing.T) {
	if !knownLayout("dvorak") || knownLayout("klingon") {
		t.Fatalf("unexpected layout check")
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("secret\r\nnext"))
	got, err := readLine(r)
	if err != nil || got != "secret" {
		t.Fatalf("expected secret, got %q %v", got, err)
	}
	got, err = readLine(r)
	if err != nil || got != "next" {
		t.Fatalf("expected last line without newline, got %q %v", got, err)
	}
	if _, err := readLine(r); err == nil {
		t.Fatalf("expected EOF error")
	}
}

func TestLoadGameWordsDefault(t *testing.T) {
	words, err := loadGameWords("")
	if err != nil || len(words) == 0 {
		t.Fatalf("expected built-in words, got %d %v", len(words), err)
	}
}
