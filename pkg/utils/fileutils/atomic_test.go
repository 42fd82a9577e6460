package fileutils

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeString(s string) func(w io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestAtomicCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeLists.txt")

	if err := AtomicCreate(path, 0o644, writeString("project(demo)\n")); err != nil {
		t.Fatalf("AtomicCreate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "project(demo)\n" {
		t.Errorf("content = %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("left %d entries in dir, want only the target", len(entries))
	}
}

func TestAtomicCreateRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "task.cmake")
	if err := os.WriteFile(path, []byte("mine"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := AtomicCreate(path, 0o644, writeString("theirs"))
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("error = %v, want fs.ErrExist", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "mine" {
		t.Errorf("existing file modified: %q", data)
	}
}

func TestAtomicCreateGeneratorError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")
	boom := errors.New("boom")

	err := AtomicCreate(path, 0o644, func(io.Writer) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if ok, _ := Exists(path); ok {
		t.Errorf("target created despite generator error")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp file left behind: %d entries", len(entries))
	}
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(path, []byte("node_modules\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Append(path, 0o644, writeString("build\n")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "node_modules\nbuild\n" {
		t.Errorf("content = %q", data)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if ok, err := Exists(filepath.Join(dir, "nope")); ok || err != nil {
		t.Errorf("Exists(nope) = %v, %v", ok, err)
	}
	if ok, err := Exists(dir); !ok || err != nil {
		t.Errorf("Exists(dir) = %v, %v", ok, err)
	}
}
