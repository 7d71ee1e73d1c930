package md2post

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInputPath  = errors.New("input path cannot be empty")
	ErrInputFormat     = errors.New("invalid note")
	ErrEncoding        = errors.New("not valid UTF-8")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyDelimiter  = errors.New("block delimiter cannot be empty")

	// Output errors. File system causes stay in the chain.
	ErrWritePost = errors.New("failed to write post")
	ErrCopyPDF   = errors.New("failed to copy PDF")

	// Preview errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrPreview          = errors.New("preview generation failed")
)
