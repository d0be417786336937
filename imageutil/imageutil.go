package imageutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

// MimeType sniffs the image format of data by its magic bytes.
// PNG, JPEG, GIF and WebP are the formats the platform accepts for
// avatars and icons.
func MimeType(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png", nil
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")),
		len(data) >= 10 && (bytes.Equal(data[6:10], []byte("JFIF")) || bytes.Equal(data[6:10], []byte("Exif"))):
		return "image/jpeg", nil
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif", nil
	case bytes.HasPrefix(data, []byte("RIFF")) && len(data) >= 12 && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp", nil
	default:
		return "", ErrUnsupportedImage
	}
}

// DataURI encodes an image payload as the data: URI the API expects
// for uploaded avatars and icons.
func DataURI(data []byte) (string, error) {
	mime, err := MimeType(data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// ValidIconSize reports whether size is a power of two within
// [16, 4096], the only sizes the CDN serves.
func ValidIconSize(size int) bool {
	return size&(size-1) == 0 && size >= 16 && size <= 4096
}
