package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/go-resty/resty/v2"
)

// maxBodyExcerpt bounds how much of an unexpected body is kept in errors.
const maxBodyExcerpt = 512

// errorBody is the subset of an endpoint answer that describes a failure.
type errorBody struct {
	Success   *bool  `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode()}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		statusErr.Message = body.Error
		statusErr.Code = body.ErrorCode
		return statusErr
	}

	statusErr.Message = excerpt(resp.Body())
	return statusErr
}

// ToFailure converts an error returned by an [IngestionAdapter] into the
// input of [upload.Classify]. The original error is kept as the cause.
func ToFailure(err error) upload.Failure {
	f := upload.Failure{Err: err}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		f.StatusCode = statusErr.StatusCode
		f.Body = statusErr.Message
		f.Code = statusErr.Code
		return f
	}

	var remote *RemoteFailure
	if errors.As(err, &remote) {
		f.Body = remote.Message
		f.Code = remote.Code
		return f
	}

	return f
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxBodyExcerpt {
		return s
	}

	cut := maxBodyExcerpt
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
