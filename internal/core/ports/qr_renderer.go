package ports

// QRRenderer turns a QR payload into a scannable PNG image. It holds no state.
type QRRenderer interface {
	RenderPNG(payload string, size int) ([]byte, error)
}
