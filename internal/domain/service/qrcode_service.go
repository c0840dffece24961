package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code pointing at a store's
	// public storefront page.
	GenerateStoreQR(storeSlug string) ([]byte, error)
}
