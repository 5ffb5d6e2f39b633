package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBlogShareQR renders a PNG QR code pointing at the public page of a blog
	GenerateBlogShareQR(blogID uuid.UUID) ([]byte, error)

	// ParseBlogShareQR extracts the blog ID from the content of a share QR code
	ParseBlogShareQR(qrData string) (uuid.UUID, error)
}
