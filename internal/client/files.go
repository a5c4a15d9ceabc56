package client

import (
	"slices"

	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/MKhiriev/go-order-intake/models"
)

// loadFiles reads paths in order. The screenshot path is marked as the
// payment proof and appended when it is not among paths.
func loadFiles(paths []string, screenshot string, readFile upload.ReadFileFunc) ([]models.FileDescriptor, error) {
	if screenshot != "" && !slices.Contains(paths, screenshot) {
		paths = append(paths, screenshot)
	}

	files := make([]models.FileDescriptor, 0, len(paths))
	for _, path := range paths {
		file, err := upload.LoadFile(path, readFile)
		if err != nil {
			return nil, err
		}

		file.IsPaymentScreenshot = path == screenshot
		files = append(files, file)
	}

	return files, nil
}
