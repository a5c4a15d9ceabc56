package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-order-intake/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// uploadModel shows the running upload of one order. Cancel aborts the
// request in flight and no further chunk is sent. The model quits only
// once UploadBatch has returned.
type uploadModel struct {
	orderID    string
	totalFiles int

	spinner  spinner.Model
	bar      progress.Model
	progress models.Progress

	cancel    func()
	canceling bool

	done   bool
	result models.BatchResult
	err    error
}

func newUploadModel(orderID string, totalFiles int, cancel func()) uploadModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return uploadModel{
		orderID:    orderID,
		totalFiles: totalFiles,
		spinner:    s,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		cancel:     cancel,
	}
}

func (m uploadModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) && !m.canceling {
			m.canceling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case progressMsg:
		m.progress = msg.progress
		return m, m.bar.SetPercent(msg.progress.Fraction())

	case uploadDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		if bar, ok := updated.(progress.Model); ok {
			m.bar = bar
		}
		return m, cmd
	}

	return m, nil
}

func (m uploadModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Order " + m.orderID))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())

	switch {
	case m.canceling:
		b.WriteString(" Canceling, aborting the request in flight...")
	case m.progress.TotalChunks == 0:
		fmt.Fprintf(&b, " Preparing %d file(s)...", m.totalFiles)
	default:
		fmt.Fprintf(&b, " Chunk %d/%d, %d/%d file(s) stored",
			m.progress.Chunk, m.progress.TotalChunks, m.progress.Uploaded, m.progress.Total)
	}

	b.WriteString("\n\n")
	b.WriteString(m.bar.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("q / esc / ctrl+c: cancel"))

	return appStyle.Render(b.String())
}
