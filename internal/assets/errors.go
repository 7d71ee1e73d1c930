package assets

import "errors"

// Sentinel errors for preview asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names that are not bare file names.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath means preview.assetPath is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	ErrAssetRead     = errors.New("failed to read asset")
	ErrPathTraversal = errors.New("path traversal detected")
)
