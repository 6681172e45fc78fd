package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrTokenization     = errors.New("tokenization resource unavailable")
	ErrResourceLoad     = errors.New("linguistic resource load failed")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
