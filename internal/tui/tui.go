package tui

import (
	"context"
	"io"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/service"
	"github.com/MKhiriev/go-order-intake/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	uploads service.ClientUploadService
	options []tea.ProgramOption

	logger *logger.Logger
}

// New builds the terminal UI. Extra program options (e.g. tea.WithInput)
// are passed to every bubbletea program it runs.
func New(uploads service.ClientUploadService, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		uploads: uploads,
		options: options,
		logger:  logger,
	}
}

// RunUpload runs UploadBatch behind a progress view rendered to out. The
// upload runs in its own goroutine and reports through program messages;
// pressing q, esc or ctrl+c cancels ctx of the upload.
func (t *TUI) RunUpload(ctx context.Context, out io.Writer, files []models.FileDescriptor, order models.OrderMetadata) (models.BatchResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newUploadModel(order.OrderID, len(files), cancel)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithOutput(out)}, t.options...)...)

	go func() {
		result, err := t.uploads.UploadBatch(ctx, files, order, func(p models.Progress) {
			program.Send(progressMsg{progress: p})
		})
		program.Send(uploadDoneMsg{result: result, err: err})
	}()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Msg("upload view failed")
		return models.BatchResult{}, err
	}

	result, ok := finalModel.(uploadModel)
	if !ok {
		return models.BatchResult{}, tea.ErrProgramKilled
	}

	return result.result, result.err
}
