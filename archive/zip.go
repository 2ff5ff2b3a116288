// Package archive unpacks downloaded series bundles.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/util"
)

// Extract writes every file of the zip archive in data into dir.
// Entry paths are flattened to their base name and existing files are
// overwritten. dir is created when missing.
func Extract(data []byte, dir string) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		name := filepath.Base(filepath.FromSlash(entry.Name))
		if name == "." || name == string(filepath.Separator) {
			continue
		}

		if err := extractFile(entry, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("extract %s: %w", entry.Name, err)
		}
	}

	return nil
}

func extractFile(entry *zip.File, path string) error {
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer util.Ignore(src.Close)

	dst, err := filesystem.API().OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer util.Ignore(dst.Close)

	_, err = io.Copy(dst, src)
	return err
}
