package media

import (
	"errors"
	"fmt"
	"path/filepath"
)

var ErrUnsupportedMediaType = errors.New("unsupported file type")

// ContentType classifies path by its extension. The mapping is exhaustive,
// any other extension yields ErrUnsupportedMediaType.
func ContentType(path string) (string, error) {
	ext := filepath.Ext(path)

	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".gif":
		return "image/gif", nil
	case ".webp":
		return "image/webp", nil
	case ".mp4":
		return "video/mp4", nil
	}

	return "", fmt.Errorf("%w (%s)", ErrUnsupportedMediaType, ext)
}
