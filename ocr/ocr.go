// Package ocr defines the optional OCR collaborator interface the
// traversal engine calls into for each image event.
// Concrete providers (platform vision APIs, a hosted OCR service) are
// external to this module; the core only depends on this interface.
package ocr

import "context"

// ImageInfo describes the image passed to a Provider, carried alongside
// the raw bytes so a provider can skip unsupported formats cheaply.
type ImageInfo struct {
	AssetPath string
	Width     float64
	Height    float64
}

// Result is a provider's recognized text, carried back onto the image
// event's payload.
type Result struct {
	Text       string
	Confidence float64
}

// Provider recognizes text within an image. A provider failure is
// turned into a nil result on the outgoing event rather than aborting
// the traversal.
type Provider interface {
	Recognize(ctx context.Context, imageBytes []byte, info ImageInfo) (Result, error)
}
