// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Classify ─────────────────────────────────────────────────────────────────

// TestClassify_Kinds covers structured codes, typed errors, status codes and
// phrase fallbacks.
func TestClassify_Kinds(t *testing.T) {
	var syntaxErr error
	{
		var v map[string]any
		syntaxErr = json.Unmarshal([]byte("<!DOCTYPE html>"), &v)
		require.Error(t, syntaxErr)
	}

	tests := []struct {
		name    string
		failure Failure
		want    Kind
	}{
		{"code quota", Failure{Code: "QUOTA_EXCEEDED", Body: "something else"}, KindQuotaExceeded},
		{"code lower kebab", Failure{Code: "file-too-large"}, KindFileTooLarge},
		{"code wins over phrase", Failure{Code: "CORS_BLOCKED", Body: "quota"}, KindCorsBlocked},
		{"unknown code falls through", Failure{Code: "WHATEVER", Body: "Rate limit hit"}, KindQuotaExceeded},
		{"status 429", Failure{StatusCode: http.StatusTooManyRequests}, KindQuotaExceeded},
		{"status 413", Failure{StatusCode: http.StatusRequestEntityTooLarge}, KindFileTooLarge},
		{"json syntax", Failure{Err: fmt.Errorf("decode: %w", syntaxErr)}, KindMalformedResponse},
		{"deadline", Failure{Err: fmt.Errorf("send: %w", context.DeadlineExceeded)}, KindNetworkUnreachable},
		{"conn refused", Failure{Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}}, KindNetworkUnreachable},
		{"dns", Failure{Err: &net.DNSError{Err: "no such host", Name: "script.example"}}, KindNetworkUnreachable},
		{"cors phrase", Failure{Err: errors.New("blocked by CORS policy: No 'Access-Control-Allow-Origin'")}, KindCorsBlocked},
		{"apps script quota", Failure{Body: "Exception: Service invoked too many times for one day: urlfetch."}, KindQuotaExceeded},
		{"execution time", Failure{StatusCode: 500, Body: "Exceeded maximum execution time"}, KindQuotaExceeded},
		{"too large phrase", Failure{StatusCode: 500, Body: "File size exceeds the maximum allowed"}, KindFileTooLarge},
		{"failed to fetch", Failure{Err: errors.New("TypeError: Failed to fetch")}, KindNetworkUnreachable},
		{"html body", Failure{StatusCode: 500, Body: "<html><body>Error</body></html>"}, KindMalformedResponse},
		{"unmatched", Failure{StatusCode: 500, Body: "Drive folder missing"}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.failure)
			assert.Equal(t, tt.want, got.Kind, got.Raw)
			assert.NotEmpty(t, got.Message)
		})
	}
}

// TestClassify_UnknownKeepsRawMessage verifies that nothing is swallowed for
// unmatched failures.
func TestClassify_UnknownKeepsRawMessage(t *testing.T) {
	got := Classify(Failure{StatusCode: 500, Body: "  Spreadsheet ID is wrong  "})

	assert.Equal(t, KindUnknown, got.Kind)
	assert.Equal(t, "Spreadsheet ID is wrong", got.Message)
	assert.Equal(t, got.Message, got.Raw)
}

// TestClassify_EmptyFailure verifies the fallback text for an empty failure.
func TestClassify_EmptyFailure(t *testing.T) {
	assert.Equal(t, "upload failed", Classify(Failure{}).Message)
	assert.Equal(t, "upload failed with HTTP 502 Bad Gateway", Classify(Failure{StatusCode: 502}).Message)
}

// TestClassify_RawJoinsErrorAndBody verifies that both parts of a failure
// are kept in the raw text.
func TestClassify_RawJoinsErrorAndBody(t *testing.T) {
	got := Classify(Failure{Err: errors.New("http 500"), Body: "boom"})
	assert.Equal(t, "http 500: boom", got.Raw)
}

// TestClassify_AnsweredFailuresStayRemote verifies that a non-2xx answer is
// never network or CORS, whatever its status text or body says.
func TestClassify_AnsweredFailuresStayRemote(t *testing.T) {
	tests := []struct {
		name     string
		failure  Failure
		wantKind Kind
		sentinel error
	}{
		{
			name:     "502 bad gateway",
			failure:  Failure{Err: errors.New("unexpected status 502 Bad Gateway"), StatusCode: http.StatusBadGateway, Body: "upstream connection reset"},
			wantKind: KindUnknown,
			sentinel: ErrRemote,
		},
		{
			name:     "503 service unavailable",
			failure:  Failure{Err: errors.New("unexpected status 503 Service Unavailable"), StatusCode: http.StatusServiceUnavailable, Body: "network maintenance, unexpected EOF"},
			wantKind: KindUnknown,
			sentinel: ErrRemote,
		},
		{
			name:     "504 gateway timeout",
			failure:  Failure{Err: errors.New("unexpected status 504 Gateway Timeout"), StatusCode: http.StatusGatewayTimeout},
			wantKind: KindUnknown,
			sentinel: ErrRemote,
		},
		{
			name:     "5xx body blaming cors",
			failure:  Failure{StatusCode: http.StatusInternalServerError, Body: "blocked by CORS policy"},
			wantKind: KindUnknown,
			sentinel: ErrRemote,
		},
		{
			name:     "503 with quota phrase",
			failure:  Failure{StatusCode: http.StatusServiceUnavailable, Body: "Service invoked too many times for one day"},
			wantKind: KindQuotaExceeded,
			sentinel: ErrQuota,
		},
		{
			name:     "502 with html page",
			failure:  Failure{StatusCode: http.StatusBadGateway, Body: "<html><body>Bad Gateway</body></html>"},
			wantKind: KindMalformedResponse,
			sentinel: ErrRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, Classify(tt.failure).Kind)

			err := NewTransportFailure(tt.failure, 1)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.NotErrorIs(t, err, ErrTransport)
			assert.Equal(t, tt.failure.StatusCode, err.StatusCode)
		})
	}
}

// TestClassify_UnansweredTimeoutIsNetwork keeps the phrase fallback for
// failures without a response.
func TestClassify_UnansweredTimeoutIsNetwork(t *testing.T) {
	got := Classify(Failure{Err: errors.New("Post \"https://script.example/exec\": timeout awaiting response headers")})
	assert.Equal(t, KindNetworkUnreachable, got.Kind)
}

// ── Error / categories ───────────────────────────────────────────────────────

// TestNewTransportFailure_Categories verifies the kind → category mapping and
// the sentinels exposed through errors.Is.
func TestNewTransportFailure_Categories(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	netErr := NewTransportFailure(Failure{Err: cause}, 1)
	assert.ErrorIs(t, netErr, ErrTransport)
	assert.ErrorIs(t, netErr, cause)
	assert.Equal(t, 1, netErr.ChunkIndex)
	assert.Contains(t, netErr.Error(), "chunk 2")

	quotaErr := NewTransportFailure(Failure{StatusCode: 429}, 0)
	assert.ErrorIs(t, quotaErr, ErrQuota)
	assert.Equal(t, 429, quotaErr.StatusCode)

	remoteErr := NewTransportFailure(Failure{StatusCode: 500, Body: "oops"}, 0)
	assert.ErrorIs(t, remoteErr, ErrRemote)
	assert.NotErrorIs(t, remoteErr, ErrTransport)
}

// TestNewValidationError verifies validation errors are not tied to a chunk.
func TestNewValidationError(t *testing.T) {
	err := NewValidationError(ErrNoFiles, "", "select at least one file")

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrNoFiles)
	assert.Equal(t, "validation error: select at least one file", err.Error())
	assert.Equal(t, KindUnknown, err.Kind)
}

// TestKindAndCategoryStrings keeps the journal labels stable.
func TestKindAndCategoryStrings(t *testing.T) {
	assert.Equal(t, "quota_exceeded", KindQuotaExceeded.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Equal(t, "transport", CategoryTransport.String())
	assert.Equal(t, "unknown", Category(99).String())
}
