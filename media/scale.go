package media

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const defaultJPEGQuality = 95

// GIFs are left out, re-encoding them would keep only the first frame.
var scalableFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
}

// Scale shrinks an image so that neither width nor height exceeds maxSize.
// Content types other than jpeg and png, images already small enough and a
// maxSize <= 0 return data unchanged.
func Scale(data []byte, contentType string, maxSize int) ([]byte, error) {
	format, ok := scalableFormats[contentType]
	if !ok || maxSize <= 0 {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxSize && bounds.Dy() <= maxSize {
		return data, nil
	}

	scaled := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var buffer bytes.Buffer
	if err := imaging.Encode(&buffer, scaled, format, imaging.JPEGQuality(defaultJPEGQuality)); err != nil {
		return nil, fmt.Errorf("image encode failed: %w", err)
	}

	return buffer.Bytes(), nil
}
