// Package qrcode generates shareable PNG codes for storefront pages.
package qrcode

import (
	"fmt"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	storefrontBaseURL    string
}

const defaultQRSize = 256

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	level := qrcode.Medium
	baseURL := ""

	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
		baseURL = strings.TrimRight(cfg.QRCode.StorefrontBaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		storefrontBaseURL:    baseURL,
	}
}

// GenerateStoreQR generates a PNG QR code pointing at a store's public storefront page.
func (s *qrcodeService) GenerateStoreQR(storeSlug string) ([]byte, error) {
	url := s.storefrontBaseURL + "/store/" + storeSlug

	qrCode, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
