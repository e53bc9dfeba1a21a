package cache

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	// Packages
	uuid "github.com/google/uuid"
	zip "github.com/klauspost/compress/zip"

	fuel "github.com/fueltools/go-fuel"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Unpack a zip archive into dir. Entries are unpacked into a staging
// directory first, so a malformed archive cannot leave partial
// content behind, then moved into place.
func (cache *Cache) extract(dir string, data []byte) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fuel.ErrInternal.Withf("archive: %v", err)
	}

	// Unpack into a staging directory
	staging := filepath.Join(dir, stagingPrefix+uuid.NewString())
	if err := os.MkdirAll(staging, DirPerm); err != nil {
		return fuel.ErrInternal.Withf("mkdir: %v", err)
	}
	defer os.RemoveAll(staging)
	for _, file := range reader.File {
		if err := extractFile(staging, file); err != nil {
			return err
		}
	}

	// Move the staged entries into place
	entries, err := os.ReadDir(staging)
	if err != nil {
		return fuel.ErrInternal.Withf("readdir: %v", err)
	}
	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(target); err != nil {
			return fuel.ErrInternal.Withf("remove: %v", err)
		}
		if err := os.Rename(filepath.Join(staging, entry.Name()), target); err != nil {
			return fuel.ErrInternal.Withf("rename: %v", err)
		}
	}

	// Return success
	return nil
}

// Unpack a single archive entry under dir, rejecting entry names
// which escape it.
func extractFile(dir string, file *zip.File) error {
	name := filepath.FromSlash(file.Name)
	if !filepath.IsLocal(name) {
		return fuel.ErrBadParameter.Withf("archive entry %q", file.Name)
	}
	target := filepath.Join(dir, name)
	if file.FileInfo().IsDir() {
		if err := os.MkdirAll(target, DirPerm); err != nil {
			return fuel.ErrInternal.Withf("mkdir: %v", err)
		}
		return nil
	}

	// Create the parent directory and copy the content
	if err := os.MkdirAll(filepath.Dir(target), DirPerm); err != nil {
		return fuel.ErrInternal.Withf("mkdir: %v", err)
	}
	src, err := file.Open()
	if err != nil {
		return fuel.ErrInternal.Withf("archive: %v", err)
	}
	defer src.Close()
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fuel.ErrInternal.Withf("open: %v", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fuel.ErrInternal.Withf("write: %v", err)
	}

	// Return success
	return nil
}
