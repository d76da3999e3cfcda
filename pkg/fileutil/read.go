package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// MaxFileSize is the largest file ReadFileWithLimit accepts (1MB).
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file up to MaxFileSize.
// Directories and oversized files are rejected.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err == nil {
		if info.IsDir() {
			return nil, errors.Newf("%s is a directory", path)
		}
		if info.Size() > MaxFileSize {
			return nil, ErrFileTooLarge
		}
	}

	r := io.LimitReader(f, MaxFileSize+1)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// ReadTextWithLimit is ReadFileWithLimit returning the content as a string.
func ReadTextWithLimit(path string) (string, error) {
	data, err := ReadFileWithLimit(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
