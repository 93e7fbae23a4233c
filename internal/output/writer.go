package output

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/unicostudio/b-ai-localization/internal/domain"
)

// Writer persists projected output under a single directory. File names get
// a shared run timestamp so successive runs never overwrite each other.
type Writer struct {
	dir       string
	timestamp string
	logger    *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{
		dir:       dir,
		timestamp: time.Now().Format("20060102_150405"),
		logger:    logger,
	}
}

// WriteFull writes the full-format JSON array and returns its path.
func (w *Writer) WriteFull(data []byte) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("localization_%s.json", w.timestamp))
	if err := w.writeFile(path, data); err != nil {
		return "", err
	}
	w.logger.Info("wrote full format output", zap.String("path", path))
	return path, nil
}

// WriteLanguageTables writes one strings_<code>.json per language table and,
// when more than one table exists, bundles them into a zip alongside the
// individual files. Returns the paths of everything written.
func (w *Writer) WriteLanguageTables(tables map[string]map[string]string) ([]string, error) {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var paths []string
	files := make(map[string][]byte, len(tables))
	for _, name := range names {
		data, err := json.MarshalIndent(tables[name], "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s table: %w", name, err)
		}

		fileName := fmt.Sprintf("strings_%s.json", languageFileCode(name))
		path := filepath.Join(w.dir, fileName)
		if err := w.writeFile(path, data); err != nil {
			return nil, err
		}
		files[fileName] = data
		paths = append(paths, path)
	}

	if len(files) > 1 {
		zipPath, err := w.writeZip(files)
		if err != nil {
			return nil, err
		}
		paths = append(paths, zipPath)
	}

	w.logger.Info("wrote language tables",
		zap.Int("languages", len(tables)),
		zap.String("dir", w.dir))
	return paths, nil
}

func (w *Writer) writeZip(files map[string][]byte) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("localization_languages_%s.zip", w.timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(f)
	for _, name := range names {
		entry, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return "", fmt.Errorf("adding %s to archive: %w", name, err)
		}
		if _, err := entry.Write(files[name]); err != nil {
			zw.Close()
			return "", fmt.Errorf("writing %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalizing %s: %w", path, err)
	}

	return path, nil
}

func (w *Writer) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", w.dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// languageFileCode maps a table name to the short code used in file names.
// The English table is stored under its literal "EN" key.
func languageFileCode(name string) string {
	if name == "EN" {
		return "en"
	}
	return strings.ToLower(domain.LanguageCode(name))
}
