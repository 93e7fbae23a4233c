package output

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestWriteFullCreatesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, zap.NewNop())

	path, err := w.WriteFull([]byte("[]"))
	if err != nil {
		t.Fatalf("WriteFull failed: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "localization_") || !strings.HasSuffix(base, ".json") {
		t.Fatalf("unexpected file name %q", base)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestWriteLanguageTablesWritesFilesAndZip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, zap.NewNop())

	tables := map[string]map[string]string{
		"EN":      {"question_1": "Hello!"},
		"turkish": {"question_1": "Merhaba!"},
	}

	paths, err := w.WriteLanguageTables(tables)
	if err != nil {
		t.Fatalf("WriteLanguageTables failed: %v", err)
	}
	// Two language files plus the bundle.
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d: %v", len(paths), paths)
	}

	var table map[string]string
	data, err := os.ReadFile(filepath.Join(dir, "strings_tr.json"))
	if err != nil {
		t.Fatalf("strings_tr.json missing: %v", err)
	}
	if err := json.Unmarshal(data, &table); err != nil {
		t.Fatalf("strings_tr.json is not valid JSON: %v", err)
	}
	if table["question_1"] != "Merhaba!" {
		t.Fatalf("unexpected turkish table content: %v", table)
	}

	if _, err := os.Stat(filepath.Join(dir, "strings_en.json")); err != nil {
		t.Fatalf("strings_en.json missing: %v", err)
	}

	zipPath := paths[len(paths)-1]
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("bundle is not a readable zip: %v", err)
	}
	defer reader.Close()
	names := make(map[string]bool)
	for _, f := range reader.File {
		names[f.Name] = true
	}
	if !names["strings_en.json"] || !names["strings_tr.json"] {
		t.Fatalf("zip is missing language files: %v", names)
	}
}

func TestWriteLanguageTablesSingleLanguageSkipsZip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, zap.NewNop())

	paths, err := w.WriteLanguageTables(map[string]map[string]string{
		"EN": {"question_1": "Hello!"},
	})
	if err != nil {
		t.Fatalf("WriteLanguageTables failed: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected a single file and no zip, got %v", paths)
	}
}
