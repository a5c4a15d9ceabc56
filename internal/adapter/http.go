package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/utils"
	"github.com/MKhiriev/go-order-intake/models"
	"github.com/dustin/go-humanize"
)

type httpIngestionAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	now      func() time.Time

	logger *logger.Logger
}

// NewHTTPIngestionAdapter constructs the JSON-over-HTTP implementation of
// [IngestionAdapter]. The endpoint URL is used as-is (Apps Script web app
// URLs end in "/exec" and must not gain a trailing slash); a missing scheme
// defaults to http.
//
// Returns an error if cfg.EndpointURL is empty or cannot be parsed as an
// absolute URL.
func NewHTTPIngestionAdapter(cfg *config.ClientConfig, logger *logger.Logger) (IngestionAdapter, error) {
	endpoint, err := normalizeEndpoint(cfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter endpoint url: %w", err)
	}

	return &httpIngestionAdapter{
		client:   utils.NewHTTPClient(cfg.RequestTimeout),
		endpoint: endpoint,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// SendChunk implements [IngestionAdapter]. It POSTs a [models.ChunkRequest]
// to the endpoint and decodes the [models.ChunkResult].
//
// Error mapping:
//   - no response: wraps [ErrRequestFailed] and the transport error;
//   - non-2xx: [*StatusError];
//   - undecodable 2xx body: wraps [ErrMalformedResponse] and the json error;
//   - success=false: [*RemoteFailure].
func (h *httpIngestionAdapter) SendChunk(ctx context.Context, chunk models.Chunk, order models.OrderMetadata, chunkIndex, totalChunks int) (models.ChunkResult, error) {
	req := models.ChunkRequest{
		Files:     make([]models.WireFile, 0, len(chunk.Files)),
		OrderData: order.ForChunk(chunkIndex, totalChunks, h.now()),
	}
	for _, f := range chunk.Files {
		req.Files = append(req.Files, f.Wire())
	}

	h.logger.Debug().
		Str("order_id", order.OrderID).
		Int("chunk", chunkIndex+1).
		Int("total_chunks", totalChunks).
		Int("files", len(chunk.Files)).
		Str("estimated_size", humanize.IBytes(uint64(chunk.EstimatedEncodedSize))).
		Msg("sending chunk")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(req).
		Post(h.endpoint)
	if err != nil {
		return models.ChunkResult{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChunkResult{}, err
	}

	var result models.ChunkResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		h.logger.Warn().
			Int("status", resp.StatusCode()).
			Str("body", excerpt(resp.Body())).
			Msg("undecodable chunk response")
		return models.ChunkResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if !result.Success {
		return result, &RemoteFailure{Message: result.Error, Code: result.ErrorCode}
	}

	return result, nil
}

// HealthCheck implements [IngestionAdapter] with GET on the endpoint.
func (h *httpIngestionAdapter) HealthCheck(ctx context.Context) (models.HealthStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(h.endpoint)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	var status models.HealthStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return status, nil
}

// LookupOrder implements [IngestionAdapter] with GET ?orderId=<id>. Both a
// 404 and a success=false answer mentioning "not found" map to
// [ErrOrderNotFound]; Apps Script endpoints cannot set the status code.
func (h *httpIngestionAdapter) LookupOrder(ctx context.Context, orderID string) (models.OrderRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("orderId", orderID).
		Get(h.endpoint)
	if err != nil {
		return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return models.OrderRecord{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return models.OrderRecord{}, err
	}

	var lookup models.LookupResponse
	if err = json.Unmarshal(resp.Body(), &lookup); err != nil {
		return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if !lookup.Success {
		if strings.Contains(strings.ToLower(lookup.Error), "not found") {
			return models.OrderRecord{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return models.OrderRecord{}, &RemoteFailure{Message: lookup.Error}
	}
	if lookup.Order == nil {
		return models.OrderRecord{}, fmt.Errorf("%w: missing order", ErrMalformedResponse)
	}

	return *lookup.Order, nil
}
