package main

//
// Unpacking source archives
//

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hdfkit/hdf5build/internal/fsx"
)

// ErrArchiveFormat means the downloaded archive does not match the
// format the platform flavor expects, e.g. a zip where we expected a
// gzipped tarball. We flag this explicitly rather than letting the
// reader fail with an opaque message deep inside extraction.
var ErrArchiveFormat = errors.New("archive format mismatch")

// errArchiveEntryOutsideDest means an archive entry would have been
// extracted outside the destination directory.
var errArchiveEntryOutsideDest = errors.New("archive entry outside destination")

// extractArchive fully unpacks the archive at archivePath into
// destDir using the reader selected by the flavor.
func extractArchive(flavor *buildFlavor, archivePath, destDir string) error {
	switch flavor.archive {
	case archiveFormatZip:
		return extractZip(archivePath, destDir)
	case archiveFormatTarGz:
		return extractTarGz(archivePath, destDir)
	default:
		panic(fmt.Errorf("unknown archive format: %d", flavor.archive))
	}
}

// extractZip unpacks a zip archive.
func extractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrArchiveFormat, err.Error())
	}
	defer reader.Close()
	for _, entry := range reader.File {
		if err := extractZipEntry(entry, destDir); err != nil {
			return err
		}
	}
	return nil
}

// extractZipEntry unpacks a single zip entry.
func extractZipEntry(entry *zip.File, destDir string) error {
	target, err := extractTargetPath(destDir, entry.Name)
	if err != nil {
		return err
	}
	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	source, err := entry.Open()
	if err != nil {
		return err
	}
	defer source.Close()
	return writeExtractedFile(target, source, entry.Mode())
}

// extractTarGz unpacks a gzip-compressed tarball.
func extractTarGz(archivePath, destDir string) error {
	filep, err := fsx.OpenFile(archivePath)
	if err != nil {
		return err
	}
	defer filep.Close()
	gzreader, err := gzip.NewReader(filep)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrArchiveFormat, err.Error())
	}
	defer gzreader.Close()
	treader := tar.NewReader(gzreader)
	for {
		header, err := treader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		target, err := extractTargetPath(destDir, header.Name)
		if err != nil {
			return err
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			mode := header.FileInfo().Mode().Perm()
			if err := writeExtractedFile(target, treader, mode); err != nil {
				return err
			}
		default:
			// hardlinks, symlinks, pax headers: upstream source
			// tarballs don't need them to build
		}
	}
}

// extractTargetPath maps an archive entry name to a path below
// destDir, refusing names that would escape it.
func extractTargetPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if target != filepath.Clean(destDir) &&
		!strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", errArchiveEntryOutsideDest, name)
	}
	return target, nil
}

// writeExtractedFile writes a single extracted file preserving the
// archive permissions, so configure and autogen.sh stay executable.
func writeExtractedFile(target string, source io.Reader, mode os.FileMode) error {
	destfp, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(destfp, source); err != nil {
		destfp.Close()
		return err
	}
	return destfp.Close()
}
