package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/unicostudio/b-ai-localization/pkg/errors"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ReadImages loads every image file in dir, keyed by file name. Non-image
// files are skipped; unreadable image files are logged and skipped so one
// broken file does not abort the run. An empty dir argument yields an empty
// map, which downstream treats as "no screenshots available".
func ReadImages(dir string, logger *zap.Logger) (map[string][]byte, error) {
	images := make(map[string][]byte)
	if dir == "" {
		return images, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("cannot read image directory: %v", err), "images", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping unreadable image",
				zap.String("file", name), zap.Error(err))
			continue
		}
		images[name] = data
	}

	logger.Info("loaded images", zap.Int("count", len(images)), zap.String("dir", dir))
	return images, nil
}
