package filex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadImageDataURL_EncodesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")

	// minimal PNG signature so MIME sniffing identifies the type
	payload := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	url, err := ReadImageDataURL(context.Background(), path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)
}

func TestReadImageDataURL_MissingFile(t *testing.T) {
	_, err := ReadImageDataURL(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
}

func TestReadImageDataURL_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadImageDataURL(ctx, "irrelevant")
	require.ErrorIs(t, err, context.Canceled)
}
