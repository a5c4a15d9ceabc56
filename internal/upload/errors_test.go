package upload

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesCategoryAndCause(t *testing.T) {
	cause := fmt.Errorf("%w: 51 selected", ErrTooManyFiles)
	err := NewValidationError(cause, "", "too many files")

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrTooManyFiles)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Equal(t, KindUnknown, err.Kind)
	assert.Equal(t, "validation error: too many files", err.Error())
}

func TestNewValidationError_FileTooLargeKind(t *testing.T) {
	err := NewValidationError(fmt.Errorf("%w: big.pdf", ErrFileTooLarge), "big.pdf", "big.pdf is too large")

	assert.Equal(t, KindFileTooLarge, err.Kind)
	assert.Equal(t, "big.pdf", err.File)
	assert.Equal(t, -1, err.ChunkIndex)
}

func TestNewTransportFailure_CategoryTable(t *testing.T) {
	tests := []struct {
		name     string
		failure  Failure
		sentinel error
		kind     Kind
	}{
		{
			name:     "server error is remote",
			failure:  Failure{Err: errors.New("unexpected status"), StatusCode: http.StatusInternalServerError},
			sentinel: ErrRemote,
			kind:     KindUnknown,
		},
		{
			name:     "quota code",
			failure:  Failure{Err: errors.New("endpoint reported failure"), Code: "QUOTA_EXCEEDED"},
			sentinel: ErrQuota,
			kind:     KindQuotaExceeded,
		},
		{
			name:     "network",
			failure:  Failure{Err: errors.New("dial tcp: connection refused")},
			sentinel: ErrTransport,
			kind:     KindNetworkUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTransportFailure(tt.failure, 1)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, tt.failure.Err)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.failure.StatusCode, err.StatusCode)
			assert.Contains(t, err.Error(), "(chunk 2)")
		})
	}
}

func TestNewCanceledError(t *testing.T) {
	err := NewCanceledError(context.Canceled, 2)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, "transport error (chunk 3): upload canceled", err.Error())
}
