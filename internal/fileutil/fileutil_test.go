package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := []byte("hello world")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	hash, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	sum := sha256.Sum256(content)
	want := "sha256:" + hex.EncodeToString(sum[:])
	if hash != want {
		t.Fatalf("hash mismatch: got %q, want %q", hash, want)
	}
}

func TestProbeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	size, hash, err := ProbeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != 5 {
		t.Fatalf("size mismatch: got %d", size)
	}
	if !strings.HasPrefix(hash, "sha256:") {
		t.Fatalf("hash not prefixed: %q", hash)
	}
}

func TestProbeFile_Missing(t *testing.T) {
	if _, _, err := ProbeFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "nested", "dst.bin")

	content := []byte("verified copy content")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	size, hash, err := CopyFileVerified(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	if size != int64(len(content)) {
		t.Fatalf("size mismatch: got %d", size)
	}
	wantHash, err := HashFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if hash != wantHash {
		t.Fatalf("hash mismatch: got %q, want %q", hash, wantHash)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFileVerified_MissingSource(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := CopyFileVerified(filepath.Join(dir, "nope"), filepath.Join(dir, "dst")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestWriteFileLocked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest", "rep.json")

	if err := WriteFileLocked(path, []byte(`{"name":"exr"}`)); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"name":"exr"}` {
		t.Fatalf("content mismatch: got %q", got)
	}

	// Overwrite through the same lock.
	if err := WriteFileLocked(path, []byte(`{"name":"mov"}`)); err != nil {
		t.Fatal(err)
	}
	got, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"name":"mov"}` {
		t.Fatalf("content not replaced: got %q", got)
	}
}
