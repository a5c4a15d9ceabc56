package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/dustin/go-humanize"
)

// fileStorage is the local-filesystem implementation of [FileStorage].
// Files are written to <root>/<orderID>/<fileID>_<name>.
type fileStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileStorage creates root if needed and returns a [FileStorage] on it.
func NewFileStorage(root string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create files dir: %w", err)
	}
	logger.Debug().Str("root", root).Msg("creating file storage")
	return &fileStorage{root: root, logger: logger}, nil
}

// Save implements [FileStorage]. The file is written to a temporary name
// first and renamed into place, so readers never see a partial file.
func (s *fileStorage) Save(ctx context.Context, orderID, fileID, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := s.orderDir(orderID)
	if err != nil {
		return "", err
	}
	if err = checkPathElement(fileID); err != nil {
		return "", err
	}
	base := fileID + "_" + sanitizeFileName(name)

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create order dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(dir, base)); err != nil {
		return "", fmt.Errorf("rename file: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("order_id", orderID).
		Str("file", base).
		Str("size", humanize.IBytes(uint64(len(data)))).
		Msg("file stored")

	return filepath.Join(orderID, base), nil
}

// Open implements [FileStorage].
func (s *fileStorage) Open(ctx context.Context, orderID, fileID string) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	dir, err := s.orderDir(orderID)
	if err != nil {
		return nil, "", err
	}
	if err = checkPathElement(fileID); err != nil {
		return nil, "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s/%s", ErrFileNotFound, orderID, fileID)
		}
		return nil, "", fmt.Errorf("read order dir: %w", err)
	}

	prefix := fileID + "_"
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, "", fmt.Errorf("open file: %w", err)
		}
		return f, strings.TrimPrefix(e.Name(), prefix), nil
	}

	return nil, "", fmt.Errorf("%w: %s/%s", ErrFileNotFound, orderID, fileID)
}

func (s *fileStorage) orderDir(orderID string) (string, error) {
	if err := checkPathElement(orderID); err != nil {
		return "", err
	}
	return filepath.Join(s.root, orderID), nil
}

func checkPathElement(elem string) error {
	if elem == "" || elem == "." || elem == ".." || strings.ContainsAny(elem, `/\`) || strings.ContainsRune(elem, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidPathElement, elem)
	}
	return nil
}

// sanitizeFileName keeps the base name and replaces characters that are
// unsafe on common filesystems.
func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`<>:"|?*`, r):
			return '_'
		default:
			return r
		}
	}, name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "file"
	}
	return name
}
