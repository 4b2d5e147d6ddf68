package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePath_Relative(t *testing.T) {
	got, err := resolvePath("records.csv")
	if err != nil {
		t.Fatalf("resolvePath failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Expected absolute path, got %s", got)
	}
	if !strings.HasSuffix(got, "records.csv") {
		t.Errorf("Expected path to end with records.csv, got %s", got)
	}
}

func TestResolvePath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("No home directory: %v", err)
	}

	got, err := resolvePath("~/Downloads/records.csv")
	if err != nil {
		t.Fatalf("resolvePath failed: %v", err)
	}
	want := filepath.Join(home, "Downloads", "records.csv")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestResolvePath_AbsoluteUnchanged(t *testing.T) {
	got, err := resolvePath("/tmp/records.csv")
	if err != nil {
		t.Fatalf("resolvePath failed: %v", err)
	}
	if got != "/tmp/records.csv" {
		t.Errorf("Expected /tmp/records.csv, got %s", got)
	}
}
