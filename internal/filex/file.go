// Package filex loads image files into the opaque text form the store
// keeps them in. Registration and product upload call ReadImageDataURL
// and only persist once the whole blob has been read and encoded, so a
// half-decoded image can never end up inside a stored record.
package filex

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxImageSize caps the size of an image accepted for a profile picture
// or product photo.
const MaxImageSize = 5 << 20 // 5 MiB

// ReadImageDataURL reads the file at path and returns it encoded as a
// data URL (base64 with a sniffed MIME type). The read is synchronous:
// the caller resumes only after the full blob is in memory.
func ReadImageDataURL(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxImageSize {
		return "", fmt.Errorf("image %s exceeds %d bytes", path, int64(MaxImageSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
