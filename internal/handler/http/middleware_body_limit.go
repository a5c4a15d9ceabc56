package http

import (
	"net/http"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/dustin/go-humanize"
)

// withBodyLimit rejects requests whose declared length exceeds
// maxRequestSize and caps the body of the rest, so a request without
// Content-Length fails while being decoded.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxRequestSize <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > h.maxRequestSize {
			logger.FromRequest(r).Warn().
				Str("content_length", humanize.IBytes(uint64(r.ContentLength))).
				Str("limit", humanize.IBytes(uint64(h.maxRequestSize))).
				Msg("request body too large")
			writeError(w, ErrPayloadTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
		next.ServeHTTP(w, r)
	})
}
