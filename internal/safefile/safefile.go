// Package safefile provides hardened file reading for the CLI's
// S-file and station-list loaders.
package safefile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotRegularFile is returned when a path is not a regular file
// (symlink, FIFO, device, socket, directory).
var ErrNotRegularFile = errors.New("not a regular file")

// ErrTooLarge is returned when a file exceeds the caller's size limit.
var ErrTooLarge = errors.New("file too large")

// OpenRegular opens a file and verifies it is a regular file, both
// before opening (Lstat, so symlinks are caught) and on the open
// descriptor (so a swap between the two checks is caught). The caller
// must close the returned file.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, nil, err
	}
	if !linkInfo.Mode().IsRegular() {
		return nil, nil, ErrNotRegularFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotRegularFile
	}

	return f, info, nil
}

// ReadFile reads an entire regular file, refusing special files and
// anything larger than maxSize bytes. An S-file is a few KB; the limit
// guards against a mistyped path landing on something huge.
func ReadFile(path string, maxSize int64) ([]byte, error) {
	f, info, err := OpenRegular(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, info.Size(), maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: read more than %d bytes", ErrTooLarge, maxSize)
	}
	return data, nil
}
