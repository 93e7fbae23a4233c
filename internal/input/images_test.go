package input

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestReadImagesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"ID1_shot.png":  []byte("png"),
		"ID2_shot.JPG":  []byte("jpg"),
		"notes.txt":     []byte("text"),
		"data.json":     []byte("{}"),
		"ID3_anim.webp": []byte("webp"),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	images, err := ReadImages(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("ReadImages failed: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d: %v", len(images), keys(images))
	}
	if string(images["ID1_shot.png"]) != "png" {
		t.Fatalf("unexpected content for ID1_shot.png")
	}
	if _, ok := images["notes.txt"]; ok {
		t.Fatal("non-image file must be filtered out")
	}
}

func TestReadImagesEmptyDirArgument(t *testing.T) {
	images, err := ReadImages("", zap.NewNop())
	if err != nil {
		t.Fatalf("ReadImages failed: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %d", len(images))
	}
}

func TestReadImagesMissingDirectory(t *testing.T) {
	if _, err := ReadImages(filepath.Join(t.TempDir(), "nope"), zap.NewNop()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
