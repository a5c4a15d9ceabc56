package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackBody is sent when a response cannot be marshaled. It keeps the
// shape of a failed chunk result so clients can still decode it.
const fallbackBody = `{"success":false,"error":"Internal error","errorCode":"INTERNAL"}`

// WriteJSON marshals data and writes it with statusCode.
//
// Responses are never cached: lookups and chunk results change with every
// accepted chunk. If data cannot be marshaled a 500 with a minimal failure
// body is written instead and the marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallbackBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}
