// Package qrcode renders share codes that link to a blog's public page.
package qrcode

import (
	"strings"

	"storyhub/config"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:5173"
	blogPathPrefix = "/blog/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "", defaultBaseURL)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateBlogShareQR encodes <baseURL>/blog/<id> as a PNG QR code.
func (s *qrcodeService) GenerateBlogShareQR(blogID uuid.UUID) ([]byte, error) {
	pngBytes, err := qrcode.Encode(s.shareURL(blogID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return pngBytes, nil
}

// ParseBlogShareQR returns the blog ID encoded in a share URL.
func (s *qrcodeService) ParseBlogShareQR(qrData string) (uuid.UUID, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(qrData), s.baseURL+blogPathPrefix)
	if !ok {
		return uuid.Nil, errors.Errorf("not a blog share link: %s", qrData)
	}

	blogID, err := uuid.Parse(strings.Trim(rest, "/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse blog ID")
	}

	return blogID, nil
}

func (s *qrcodeService) shareURL(blogID uuid.UUID) string {
	return s.baseURL + blogPathPrefix + blogID.String()
}
