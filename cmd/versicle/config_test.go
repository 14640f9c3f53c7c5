package main

import (
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/Versicle/core/reftext"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.Database != "versicle.db" {
		t.Errorf("Database = %q, want versicle.db", cfg.Database)
	}
}

func TestLoadConfig_File(t *testing.T) {
	tempDir := t.TempDir()
	path := createTestFile(t, tempDir, "versicle.yaml", `
language: de
listen: ":9090"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, want de", cfg.Language)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want :9090", cfg.Listen)
	}
	// Unset keys keep their defaults.
	if cfg.Database != "versicle.db" {
		t.Errorf("Database = %q, want versicle.db", cfg.Database)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tempDir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing config file, got nil")
	}

	bad := createTestFile(t, tempDir, "bad.yaml", "language: [unclosed")
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed YAML, got nil")
	}
}

func TestLoadConfig_LocaleXML(t *testing.T) {
	tempDir := t.TempDir()
	names := createTestFile(t, tempDir, "aliases.xml", `<XMLBIBLE>
  <BIBLEBOOK bnumber="1" bname="Book of Beginnings"/>
</XMLBIBLE>`)
	path := createTestFile(t, tempDir, "versicle.yaml", `
locale_xml:
  en: `+names+`
`)

	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	r, err := reftext.Parse("Book of Beginnings 1:1", "en")
	if err != nil {
		t.Fatalf("Parse with config-loaded alias error = %v", err)
	}
	if r.String() != "Gen.1.1" {
		t.Errorf("parsed %s, want Gen.1.1", r)
	}
}

func TestLoadConfig_LocaleXMLMissing(t *testing.T) {
	tempDir := t.TempDir()
	path := createTestFile(t, tempDir, "versicle.yaml", `
locale_xml:
  pt: `+filepath.Join(tempDir, "missing.xml")+`
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for missing locale document, got nil")
	}
}

func TestGetLang(t *testing.T) {
	cfg := &Config{Language: "de"}

	setLang(t, "")
	if got := getLang(cfg); got != "de" {
		t.Errorf("getLang() = %q, want config value de", got)
	}

	setLang(t, "fr")
	if got := getLang(cfg); got != "fr" {
		t.Errorf("getLang() = %q, want flag value fr", got)
	}
}

func TestListenPort(t *testing.T) {
	tests := []struct {
		listen string
		want   int
	}{
		{":8080", 8080},
		{"0.0.0.0:9000", 9000},
		{"localhost:7070", 7070},
		{"8081", 8081},
		{"", 8080},
		{"garbage", 8080},
	}
	for _, tt := range tests {
		if got := listenPort(tt.listen); got != tt.want {
			t.Errorf("listenPort(%q) = %d, want %d", tt.listen, got, tt.want)
		}
	}
}
