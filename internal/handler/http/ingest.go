package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-order-intake/internal/app"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/utils"
	"github.com/MKhiriev/go-order-intake/models"
)

func (h *Handler) ingestChunk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ChunkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Int64("limit", maxBytesErr.Limit).Msg("request body too large")
			writeError(w, ErrPayloadTooLarge)
			return
		}
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, app.MsgInvalidJSON, app.CodeInvalidRequest)
		return
	}

	result, err := h.services.IngestService.IngestChunk(ctx, request)
	if err != nil {
		log.Err(err).
			Str("order_id", request.OrderData.OrderID).
			Int("chunk_index", request.OrderData.ChunkIndex).
			Msg("chunk was not ingested")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// root serves the health check, or the order lookup when the orderId query
// parameter is present.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("orderId") {
		h.lookupOrder(w, r)
		return
	}

	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) lookupOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	orderID := r.URL.Query().Get("orderId")

	order, err := h.services.IngestService.FindOrder(r.Context(), orderID)
	if err != nil {
		log.Err(err).Str("order_id", orderID).Msg("order lookup failed")
		m := mappingFromError(err)
		utils.WriteJSON(w, models.LookupResponse{Success: false, Error: m.message}, m.status)
		return
	}

	utils.WriteJSON(w, models.LookupResponse{Success: true, Order: &order}, http.StatusOK)
}
