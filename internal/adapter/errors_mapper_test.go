package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/stretchr/testify/assert"
)

// TestToFailure verifies how adapter errors feed the classifier.
func TestToFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind upload.Kind
		check    func(t *testing.T, f upload.Failure)
	}{
		{
			name:     "status error with code",
			err:      fmt.Errorf("chunk 2: %w", &StatusError{StatusCode: http.StatusBadRequest, Message: "nope", Code: "QUOTA_EXCEEDED"}),
			wantKind: upload.KindQuotaExceeded,
			check: func(t *testing.T, f upload.Failure) {
				assert.Equal(t, http.StatusBadRequest, f.StatusCode)
				assert.Equal(t, "nope", f.Body)
				assert.Equal(t, "QUOTA_EXCEEDED", f.Code)
			},
		},
		{
			name:     "413 status",
			err:      &StatusError{StatusCode: http.StatusRequestEntityTooLarge},
			wantKind: upload.KindFileTooLarge,
		},
		{
			name:     "remote failure by phrase",
			err:      &RemoteFailure{Message: "Exception: Service invoked too many times for one day: driveapp."},
			wantKind: upload.KindQuotaExceeded,
			check: func(t *testing.T, f upload.Failure) {
				assert.Zero(t, f.StatusCode)
				assert.Contains(t, f.Body, "too many times")
			},
		},
		{
			name:     "remote failure unmatched",
			err:      &RemoteFailure{Message: "Sheet is locked by another editor"},
			wantKind: upload.KindUnknown,
		},
		{
			name:     "plain transport error",
			err:      fmt.Errorf("%w: %w", ErrRequestFailed, errors.New("dial tcp: connection refused")),
			wantKind: upload.KindNetworkUnreachable,
			check: func(t *testing.T, f upload.Failure) {
				assert.Empty(t, f.Body)
				assert.ErrorIs(t, f.Err, ErrRequestFailed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ToFailure(tt.err)
			assert.Same(t, tt.err, f.Err)
			if tt.check != nil {
				tt.check(t, f)
			}
			assert.Equal(t, tt.wantKind, upload.Classify(f).Kind)
		})
	}
}

// TestExcerpt verifies trimming and truncation of unexpected bodies.
func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt([]byte("  short\n")))

	long := strings.Repeat("é", maxBodyExcerpt)
	got := excerpt([]byte(long))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), maxBodyExcerpt+3)
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(got, "...")))
}

// TestStatusError_Message verifies the error text.
func TestStatusError_Message(t *testing.T) {
	err := &StatusError{StatusCode: http.StatusBadGateway, Message: "x"}
	assert.Equal(t, "unexpected status 502 Bad Gateway", err.Error())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, "endpoint reported failure", (&RemoteFailure{}).Error())
}

// TestToFailure_GatewayStatusesAreRemote feeds real status errors through
// the classifier: their status text ("Gateway Timeout") must not turn them
// into transport failures.
func TestToFailure_GatewayStatusesAreRemote(t *testing.T) {
	for _, status := range []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			err := upload.NewTransportFailure(ToFailure(&StatusError{StatusCode: status}), 1)

			assert.Equal(t, upload.CategoryRemote, err.Category)
			assert.Equal(t, upload.KindUnknown, err.Kind)
			assert.ErrorIs(t, err, upload.ErrRemote)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.Equal(t, status, err.StatusCode)
		})
	}
}
