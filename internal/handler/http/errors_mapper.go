package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-order-intake/internal/app"
	"github.com/MKhiriev/go-order-intake/internal/service"
	"github.com/MKhiriev/go-order-intake/internal/store"
	"github.com/MKhiriev/go-order-intake/internal/utils"
	"github.com/MKhiriev/go-order-intake/models"
)

type errorMapping struct {
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first matching sentinel wins.
// An empty message means the error text itself is safe to show.
var errorMappings = []struct {
	target error
	errorMapping
}{
	{ErrPayloadTooLarge, errorMapping{http.StatusRequestEntityTooLarge, app.CodePayloadTooLarge, app.MsgPayloadTooLarge}},
	{service.ErrInvalidChunkRequest, errorMapping{http.StatusBadRequest, app.CodeInvalidRequest, ""}},
	{service.ErrInvalidOrderID, errorMapping{http.StatusBadRequest, app.CodeInvalidRequest, app.MsgInvalidOrderID}},
	{service.ErrOrderNotFound, errorMapping{http.StatusNotFound, app.CodeOrderNotFound, app.MsgOrderNotFound}},
	{service.ErrFileNotFound, errorMapping{http.StatusNotFound, app.CodeFileNotFound, app.MsgFileNotFound}},

	{store.ErrBuildingSQLQuery, errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}},
	{store.ErrBeginningTransaction, errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}},
	{store.ErrCommitingTransaction, errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}},
}

var internalErrorMapping = errorMapping{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}

func mappingFromError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message == "" {
				m.message = err.Error()
			}
			return m.errorMapping
		}
	}
	return internalErrorMapping
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

// writeError answers with the failure shape of a chunk response, which the
// upload client decodes for every non-2xx status.
func writeError(w http.ResponseWriter, err error) {
	m := mappingFromError(err)
	writeFailure(w, m.status, m.message, m.code)
}

func writeFailure(w http.ResponseWriter, status int, message, code string) {
	utils.WriteJSON(w, models.ChunkResult{
		Success:   false,
		Files:     []models.UploadedFileRef{},
		Error:     message,
		ErrorCode: code,
	}, status)
}
