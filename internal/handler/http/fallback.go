package http

import (
	"net/http"

	"github.com/MKhiriev/go-order-intake/internal/app"
)

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusNotFound, app.MsgNotFound, app.CodeNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed, app.CodeMethodNotAllowed)
}
