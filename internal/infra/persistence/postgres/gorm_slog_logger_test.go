package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func query() (string, int64) {
	return `SELECT * FROM "blogs" WHERE id = 'x'`, 0
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), &config.Config{})

	requestLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	t.Run("missing record is not an error", func(t *testing.T) {
		l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)

		assert.Empty(t, scoped.String())
		assert.Empty(t, base.String())
	})

	t.Run("failure goes to the request logger", func(t *testing.T) {
		l.Trace(ctx, time.Now(), query, errors.New("connection reset"))

		assert.Contains(t, scoped.String(), `"msg":"GORM query failed"`)
		assert.Contains(t, scoped.String(), `"request_id":"req-1"`)
		assert.Contains(t, scoped.String(), "connection reset")
		assert.Empty(t, base.String())
	})

	t.Run("slow query outside a request", func(t *testing.T) {
		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

		assert.Contains(t, base.String(), `"msg":"GORM slow query"`)
	})
}
