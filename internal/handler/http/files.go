// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/go-chi/chi/v5"
)

// downloadFile streams a stored file. With ?download=1 the file is sent as
// an attachment, otherwise it is shown inline.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	orderID := chi.URLParam(r, "orderId")
	fileID := chi.URLParam(r, "fileId")

	file, name, err := h.services.IngestService.OpenFile(r.Context(), orderID, fileID)
	if err != nil {
		log.Err(err).Str("order_id", orderID).Str("file_id", fileID).Msg("file not served")
		writeError(w, err)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	disposition := "inline"
	if r.URL.Query().Get("download") == "1" {
		disposition = "attachment"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, file); err != nil {
		log.Err(err).Str("file", name).Msg("error streaming file")
	}
}
