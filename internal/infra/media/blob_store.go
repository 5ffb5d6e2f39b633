// Package media stores uploaded images in a gocloud.dev bucket.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const dataURLMarker = ";base64,"

// allowedImageTypes are the raster formats accepted for upload. SVG is excluded
// because it can carry script and objects are served from the API origin.
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Params defines the dependencies of the media store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
	logger        *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %q", cfg.BucketURL)
	}

	store := newBlobStore(bucket, cfg.PublicBaseURL, cfg.MaxBytes, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewWithBucket wraps an already opened bucket. The caller keeps ownership of
// the bucket lifecycle unless it calls Close on the returned store.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, maxBytes int64, logger *slog.Logger) service.MediaStore {
	return newBlobStore(bucket, publicBaseURL, maxBytes, logger)
}

func newBlobStore(bucket *blob.Bucket, publicBaseURL string, maxBytes int64, logger *slog.Logger) *blobStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxBytes:      maxBytes,
		logger:        logger,
	}
}

// Upload decodes an image payload, checks it is an allowed raster image and stores it under <kind>/<uuid><ext>.
func (s *blobStore) Upload(ctx context.Context, kind service.MediaKind, payload string) (string, error) {
	data, err := decodePayload(payload)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("payload is not valid base64"))
	}

	if len(data) == 0 {
		return "", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("payload is empty"))
	}

	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails(
			fmt.Sprintf("image is %d bytes, limit is %d", len(data), s.maxBytes)))
	}

	mime := mimetype.Detect(data)
	if !mimetype.EqualsAny(mime.String(), allowedImageTypes...) {
		return "", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("detected content type " + mime.String()))
	}

	key := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), mime.Extension())
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: mime.String()}); err != nil {
		return "", errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Media uploaded",
		slog.String("key", key),
		slog.String("content_type", mime.String()),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Open streams a stored object.
func (s *blobStore) Open(ctx context.Context, key string) (*service.MediaObject, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" || strings.HasPrefix(key, "..") {
		return nil, errors.WithStack(domainerrors.ErrNotFound)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to open media object")
	}

	return &service.MediaObject{
		ReadCloser:  reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// Close releases the bucket.
func (s *blobStore) Close() error {
	return s.bucket.Close()
}

// decodePayload accepts data:<mime>;base64,<data> or bare base64, padded or not.
func decodePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, dataURLMarker)
		if idx < 0 {
			return nil, errors.New("data url is not base64 encoded")
		}
		payload = payload[idx+len(dataURLMarker):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}

	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}
