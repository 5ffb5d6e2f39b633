package media

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newTestStore(t *testing.T, maxBytes int64) *blobStore {
	t.Helper()

	store := newBlobStore(memblob.OpenBucket(nil), "http://localhost:5050/media/", maxBytes, slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStore_UploadDataURL(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, 1<<20)

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)
	url, err := store.Upload(ctx, service.MediaBlogCover, payload)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:5050/media/cover/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	key := strings.TrimPrefix(url, "http://localhost:5050/media/")
	obj, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer obj.Close()

	assert.Equal(t, "image/png", obj.ContentType)
	body, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, body)
}

func TestBlobStore_UploadRawBase64(t *testing.T) {
	store := newTestStore(t, 1<<20)

	url, err := store.Upload(context.Background(), service.MediaProfilePic, base64.RawStdEncoding.EncodeToString(pngHeader))
	require.NoError(t, err)
	assert.Contains(t, url, "/profile/")
}

func TestBlobStore_RejectsInvalidPayloads(t *testing.T) {
	store := newTestStore(t, 64)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not base64", payload: "%%%"},
		{name: "empty", payload: ""},
		{name: "not an image", payload: base64.StdEncoding.EncodeToString([]byte("hello, world"))},
		{name: "too large", payload: base64.StdEncoding.EncodeToString(append(pngHeader, make([]byte, 64)...))},
		{name: "data url without base64", payload: "data:image/png,abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Upload(context.Background(), service.MediaBlogCover, tt.payload)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_IMAGE", appErr.ErrorCode())
		})
	}
}

func TestBlobStore_RejectsSVG(t *testing.T) {
	store := newTestStore(t, 1<<20)
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(document.cookie)</script></svg>`

	url, err := store.Upload(context.Background(), service.MediaBlogCover,
		"data:image/svg+xml;base64,"+base64.StdEncoding.EncodeToString([]byte(svg)))

	assert.Empty(t, url)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_IMAGE", appErr.ErrorCode())
}

func TestBlobStore_OpenMissing(t *testing.T) {
	store := newTestStore(t, 0)

	_, err := store.Open(context.Background(), "cover/missing.png")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	_, err = store.Open(context.Background(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
