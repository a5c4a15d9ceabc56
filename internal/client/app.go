package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/service"
	"github.com/MKhiriev/go-order-intake/internal/tui"
	"github.com/MKhiriev/go-order-intake/internal/utils"
	"github.com/MKhiriev/go-order-intake/models"
	"github.com/atotto/clipboard"
	"github.com/shopspring/decimal"
)

// orderIDPrefix starts every generated order id.
const orderIDPrefix = "ORD-"

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	opts     *Options
	out      io.Writer

	newID       func() string
	readFile    func(string) ([]byte, error)
	toClipboard func(string) error

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, opts *Options, out io.Writer, logger *logger.Logger) (*App, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &App{
		services:    services,
		ui:          ui,
		opts:        opts,
		out:         out,
		newID:       utils.NewUUIDGenerator().Generate,
		readFile:    os.ReadFile,
		toClipboard: clipboard.WriteAll,
		logger:      logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	switch {
	case a.opts.Health:
		return a.health(ctx)
	case a.opts.Lookup != "":
		return a.lookup(ctx)
	case a.opts.History != "":
		return a.history(ctx)
	default:
		return a.upload(ctx)
	}
}

func (a *App) upload(ctx context.Context) error {
	order, err := a.orderMetadata()
	if err != nil {
		return err
	}

	files, err := loadFiles(a.opts.Files, a.opts.PaymentScreenshot, a.readFile)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("order_id", order.OrderID).
		Int("files", len(files)).
		Msg("starting upload")

	result, err := a.ui.RunUpload(ctx, a.out, files, order)
	fmt.Fprintln(a.out, tui.RenderSummary(order.OrderID, result, err))
	if err != nil {
		a.logger.Err(err).Str("order_id", order.OrderID).Msg("upload failed")
		return err
	}

	if a.opts.Copy {
		if cErr := a.toClipboard(order.OrderID); cErr != nil {
			a.logger.Warn().Err(cErr).Msg("copy to clipboard failed")
			fmt.Fprintf(a.out, "could not copy the order id: %v\n", cErr)
		} else {
			fmt.Fprintf(a.out, "Order id %s copied to the clipboard\n", order.OrderID)
		}
	}

	return nil
}

func (a *App) orderMetadata() (models.OrderMetadata, error) {
	total := decimal.Zero
	if s := strings.TrimSpace(a.opts.Total); s != "" {
		var err error
		if total, err = decimal.NewFromString(s); err != nil {
			return models.OrderMetadata{}, fmt.Errorf("%w %q: %w", ErrInvalidTotal, s, err)
		}
	}

	orderID := strings.TrimSpace(a.opts.OrderID)
	if orderID == "" {
		orderID = orderIDPrefix + a.newID()
	}

	return models.OrderMetadata{
		OrderID: orderID,
		Total:   total,
		VPA:     strings.TrimSpace(a.opts.VPA),
	}, nil
}

func (a *App) health(ctx context.Context) error {
	status, err := a.services.OrderService.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderHealth(status))
	return nil
}

func (a *App) lookup(ctx context.Context) error {
	order, err := a.services.OrderService.Lookup(ctx, a.opts.Lookup)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderOrder("Ingestion endpoint", order))
	return nil
}

func (a *App) history(ctx context.Context) error {
	order, err := a.services.OrderService.History(ctx, a.opts.History)
	if errors.Is(err, service.ErrJournalDisabled) {
		return fmt.Errorf("%w: set a journal DSN with -d or STORAGE_DB_DATABASE_URI", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderOrder("Local journal", order))
	return nil
}
