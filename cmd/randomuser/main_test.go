package main

import (
	"os"
	"testing"
)

func TestMainNationalities(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"randomuser", "nationalities", "--no-color"}
	if code := Main(); code != 0 {
		t.Errorf("Main() = %d, want 0", code)
	}

	os.Args = []string{"randomuser", "get", "--nat", "XX"}
	if code := Main(); code != 1 {
		t.Errorf("Main() = %d, want 1", code)
	}
}
