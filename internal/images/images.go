// Package images stores menu item photos inside the data directory.
// Stored paths are relative to the data directory so the whole directory
// stays relocatable.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// dirName is the subdirectory of the data dir that holds item photos.
const dirName = "images"

// Store copies the file at srcPath into <dataDir>/images under a fresh
// uuid-based name, keeping the original extension. It returns the path
// relative to dataDir for storage in the menu item record.
func Store(dataDir, srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", srcPath, err)
	}
	defer src.Close()

	dir := filepath.Join(dataDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(srcPath))
	name := uuid.Must(uuid.NewV7()).String() + ext
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("copying image: %w", err)
	}
	return filepath.Join(dirName, name), nil
}

// Remove deletes a stored image by its data-dir-relative path. A missing
// file is not an error; the record may predate image storage.
func Remove(dataDir, relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(dataDir, relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
