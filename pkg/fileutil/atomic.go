// Package fileutil provides file system helpers for writing generated
// files atomically and reading override templates with a size limit.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// tempPattern names temp files created next to their target.
const tempPattern = ".vscode-kit-*.tmp"

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// An interrupted write leaves any previous file at path intact.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Same directory so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only remove if rename failed (file still exists)
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// AtomicWriteString is AtomicWriteThrough for text content.
func AtomicWriteString(path, content string, perm os.FileMode) error {
	return AtomicWriteThrough(path, []byte(content), perm)
}

// maxSymlinkHops bounds symlink resolution, matching the kernel's ELOOP limit.
const maxSymlinkHops = 40

// ResolveWriteTarget follows path through any chain of symlinks and returns
// the file a write should land on. Unlike filepath.EvalSymlinks the final
// target does not need to exist, so a dangling link resolves to the file it
// names.
func ResolveWriteTarget(path string) (string, error) {
	for range maxSymlinkHops {
		info, err := os.Lstat(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}

		link, err := os.Readlink(path)
		if err != nil {
			return "", errors.Wrap(err, "reading symlink")
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return "", errors.Newf("too many levels of symbolic links: %s", path)
}

// AtomicWriteThrough writes data to whatever path points at. Symlinks stay
// in place and their target is replaced atomically. An existing target
// keeps its permission bits; a new one gets perm.
func AtomicWriteThrough(path string, data []byte, perm os.FileMode) error {
	target, err := ResolveWriteTarget(path)
	if err != nil {
		return err
	}

	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}

	return AtomicWriteFile(target, data, perm)
}
