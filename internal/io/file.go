package io

import (
	"fmt"
	"io"
	"os"
)

// FileExists checks to see if a file exists at the given path.
func FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err == nil:
		return true, nil
	default:
		return false, fmt.Errorf("failed to check for existence of file at path '%s': %w", filePath, err)
	}
}

// OpenOptional opens the file at the given path with any leading UTF-8 BOM removed.
// If no file exists there, it returns a nil reader and false without an error.
// The caller must close the returned closer when one is returned.
func OpenOptional(filePath string) (io.Reader, io.Closer, bool, error) {
	exists, err := FileExists(filePath)
	if err != nil {
		return nil, nil, false, err
	}

	if !exists {
		return nil, nil, false, nil
	}

	file, err := os.Open(filePath) //nolint:gosec
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to open file at path '%s': %w", filePath, err)
	}

	return StripUTF8BOM(file), file, true, nil
}
