// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Permissions for created directories and files.
const (
	DirPermissions  = 0o750
	FilePermissions = 0o644
)

// MaxCopyAttempts bounds the numeric suffixes tried by CopyToUnique.
const MaxCopyAttempts = 10000

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNoFreeName             = errors.New("no free file name")
)

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, renamed into place once fully written. Readers never observe a
// partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmpFile, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// CopyToUnique copies src into dir under its own base name, or under
// "stem_1.ext", "stem_2.ext", ... when that name is taken. The name is
// claimed with an exclusive create, so concurrent copies never overwrite
// each other. The copy keeps the source's permission bits and modification
// time. Returns the destination path.
func CopyToUnique(src, dir string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: is a directory", src)
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 0; n < MaxCopyAttempts; n++ {
		name := base
		if n > 0 {
			name = stem + "_" + strconv.Itoa(n) + ext
		}
		dst := filepath.Join(dir, name)

		out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()) // #nosec G304 -- dst built from a validated dir
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", dst, err)
		}

		if err := copyContent(out, src); err != nil {
			_ = out.Close()
			_ = os.Remove(dst)
			return "", err
		}
		if err := out.Close(); err != nil {
			_ = os.Remove(dst)
			return "", fmt.Errorf("closing %s: %w", dst, err)
		}

		if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			return "", fmt.Errorf("setting times on %s: %w", dst, err)
		}
		return dst, nil
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrNoFreeName, base, MaxCopyAttempts)
}

func copyContent(dst io.Writer, src string) error {
	in, err := os.Open(src) // #nosec G304 -- src is the user's input file
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if _, err := io.Copy(dst, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

// ValidateExtension checks that an extension is a bare suffix.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ReplaceExtension swaps the extension of path for extension (without dot).
func ReplaceExtension(path, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + extension, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
