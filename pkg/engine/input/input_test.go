package input

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("..\n\n1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "..\n\n1\n" {
		t.Errorf("read %q", data)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Open(missing) err = nil, want error")
	}
}

func TestOpenStdin(t *testing.T) {
	old := stdin
	defer func() { stdin = old }()
	stdin = io.NopCloser(strings.NewReader("piped"))

	rc, err := Open(Stdin)
	if err != nil {
		t.Fatalf("Open(-): %v", err)
	}
	data, _ := io.ReadAll(rc)
	if string(data) != "piped" {
		t.Errorf("read %q, want \"piped\"", data)
	}
}
