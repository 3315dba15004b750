package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		flag       string
		port       string
		want       string
	}{
		{"config only", ":3000", "", "", ":3000"},
		{"port overrides config", ":3000", "", "8080", ":8080"},
		{"flag overrides port", ":3000", "127.0.0.1:9000", "8080", "127.0.0.1:9000"},
		{"flag overrides config", ":3000", ":4000", "", ":4000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listenAddr(tt.configured, tt.flag, tt.port); got != tt.want {
				t.Errorf("listenAddr(%q, %q, %q) = %q, want %q", tt.configured, tt.flag, tt.port, got, tt.want)
			}
		})
	}
}

func TestProjectsCommandDefaults(t *testing.T) {
	out, err := execute(t, "projects", "--content=")
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 5 projects:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "#") || !strings.Contains(lines[0], "TITLE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Closed Captions") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(out, "/images/dashboard.png") {
		t.Errorf("missing dashboard image in:\n%s", out)
	}
}

func TestProjectsCommandContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	body := `
projects:
  - title: Alpha
    tech: [Go, SQL]
    link: https://example.com/alpha
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "projects", "--content", path)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	for _, want := range []string{"Alpha", "Go, SQL", "https://example.com/alpha", " - "} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row %q missing %q", lines[1], want)
		}
	}
}

func TestProjectsCommandRejectsInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	if err := os.WriteFile(path, []byte("projects:\n  - title: No Link\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "projects", "--content", path)
	if err == nil || !strings.Contains(err.Error(), "link is required") {
		t.Fatalf("err = %v, want link is required", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "portfolio "+version {
		t.Errorf("version output = %q", out)
	}
}
