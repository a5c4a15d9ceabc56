package tui

import "github.com/MKhiriev/go-order-intake/models"

// progressMsg carries one progress event from the upload goroutine.
type progressMsg struct {
	progress models.Progress
}

// uploadDoneMsg ends the program once UploadBatch has returned.
type uploadDoneMsg struct {
	result models.BatchResult
	err    error
}
