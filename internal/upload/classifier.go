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
	"strings"
	"syscall"
)

// Kind is the semantic failure kind reported to the user.
type Kind int

const (
	KindUnknown Kind = iota
	KindCorsBlocked
	KindQuotaExceeded
	KindFileTooLarge
	KindNetworkUnreachable
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindCorsBlocked:
		return "cors_blocked"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindFileTooLarge:
		return "file_too_large"
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Failure is the raw outcome of a failed chunk send.
type Failure struct {
	// Err is the transport or decoding error, if any.
	Err error

	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int

	// Body is the raw response body or the remote "error" text.
	Body string

	// Code is the remote "errorCode" field when the endpoint sent one.
	Code string
}

// Classification is the result of [Classify].
type Classification struct {
	Kind    Kind
	Message string

	// Raw is the unmodified failure text.
	Raw string
}

const (
	msgCorsBlocked        = "the upload endpoint blocked the request (cross-origin policy); check that the endpoint is deployed with public access"
	msgQuotaExceeded      = "the upload service is over its quota or rate limit; wait a few minutes and retry"
	msgFileTooLarge       = "a file exceeds the upload service's size limit; remove or compress it and retry"
	msgNetworkUnreachable = "cannot reach the upload service; check the network connection and retry"
	msgMalformedResponse  = "the upload service returned an unexpected response; retry, and contact support if it persists"
)

var kindMessages = map[Kind]string{
	KindCorsBlocked:        msgCorsBlocked,
	KindQuotaExceeded:      msgQuotaExceeded,
	KindFileTooLarge:       msgFileTooLarge,
	KindNetworkUnreachable: msgNetworkUnreachable,
	KindMalformedResponse:  msgMalformedResponse,
}

// errorCodes maps structured remote codes to kinds. Codes are normalized to
// upper case with '-' and ' ' replaced by '_'.
var errorCodes = map[string]Kind{
	"CORS_BLOCKED":        KindCorsBlocked,
	"BLOCKED":             KindCorsBlocked,
	"QUOTA_EXCEEDED":      KindQuotaExceeded,
	"RATE_LIMITED":        KindQuotaExceeded,
	"FILE_TOO_LARGE":      KindFileTooLarge,
	"PAYLOAD_TOO_LARGE":   KindFileTooLarge,
	"NETWORK_UNREACHABLE": KindNetworkUnreachable,
	"MALFORMED_REQUEST":   KindMalformedResponse,
	"MALFORMED_RESPONSE":  KindMalformedResponse,
}

type phraseRule struct {
	kind    Kind
	phrases []string
}

// phraseRules are checked in order against the lower-cased failure text.
// They cover the phrasings of browser fetch errors, Apps Script quota
// errors and Go's net package.
var phraseRules = []phraseRule{
	{KindCorsBlocked, []string{
		"cors",
		"cross-origin",
		"access-control-allow-origin",
		"blocked by",
		"preflight",
	}},
	{KindQuotaExceeded, []string{
		"quota",
		"rate limit",
		"ratelimit",
		"too many requests",
		"service invoked too many times",
		"exceeded maximum execution time",
		"try again later",
	}},
	{KindFileTooLarge, []string{
		"too large",
		"payload too large",
		"request entity too large",
		"exceeds the maximum",
		"exceeds maximum",
		"size limit",
		"file size",
	}},
	{KindNetworkUnreachable, []string{
		"failed to fetch",
		"network",
		"connection refused",
		"connection reset",
		"no such host",
		"unreachable",
		"i/o timeout",
		"timeout",
		"eof",
	}},
	{KindMalformedResponse, []string{
		"unexpected token",
		"invalid character",
		"invalid json",
		"cannot unmarshal",
		"<!doctype html",
		"<html",
		"malformed",
	}},
}

// Classify maps a failed send to one of the fixed kinds. The structured
// remote code wins, then typed Go errors and well-known status codes, then
// phrase matching over the error and body text. Anything unmatched is
// [KindUnknown] with the raw text as the message.
//
// A failure with a status code got an answer from the endpoint, so it is
// never network or CORS: "504 Gateway Timeout" stays a remote error.
func Classify(f Failure) Classification {
	raw := rawText(f)
	answered := f.StatusCode != 0

	kind, ok := kindFromCode(f.Code)
	if !ok {
		kind, ok = kindFromTypes(f)
	}
	if !ok {
		kind, ok = kindFromPhrases(raw, answered)
	}
	if !ok {
		return Classification{Kind: KindUnknown, Message: raw, Raw: raw}
	}

	return Classification{Kind: kind, Message: kindMessages[kind], Raw: raw}
}

// remote reports whether the kind can come from an endpoint that answered.
func (k Kind) remote() bool {
	return k != KindCorsBlocked && k != KindNetworkUnreachable
}

func rawText(f Failure) string {
	parts := make([]string, 0, 2)
	if f.Err != nil {
		parts = append(parts, f.Err.Error())
	}
	if body := strings.TrimSpace(f.Body); body != "" {
		parts = append(parts, body)
	}
	if len(parts) == 0 {
		if f.StatusCode != 0 {
			return fmt.Sprintf("upload failed with HTTP %d %s", f.StatusCode, http.StatusText(f.StatusCode))
		}
		return "upload failed"
	}
	return strings.Join(parts, ": ")
}

func kindFromCode(code string) (Kind, bool) {
	if code == "" {
		return KindUnknown, false
	}
	normalized := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToUpper(strings.TrimSpace(code)))
	kind, ok := errorCodes[normalized]
	return kind, ok
}

func kindFromTypes(f Failure) (Kind, bool) {
	switch f.StatusCode {
	case http.StatusTooManyRequests:
		return KindQuotaExceeded, true
	case http.StatusRequestEntityTooLarge:
		return KindFileTooLarge, true
	}

	if f.Err == nil {
		return KindUnknown, false
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(f.Err, &syntaxErr) || errors.As(f.Err, &typeErr) {
		return KindMalformedResponse, true
	}

	if f.StatusCode != 0 {
		return KindUnknown, false
	}

	if errors.Is(f.Err, context.DeadlineExceeded) ||
		errors.Is(f.Err, syscall.ECONNREFUSED) ||
		errors.Is(f.Err, syscall.ECONNRESET) ||
		errors.Is(f.Err, syscall.ENETUNREACH) ||
		errors.Is(f.Err, syscall.EHOSTUNREACH) {
		return KindNetworkUnreachable, true
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(f.Err, &dnsErr) || errors.As(f.Err, &opErr) {
		return KindNetworkUnreachable, true
	}

	return KindUnknown, false
}

func kindFromPhrases(raw string, answered bool) (Kind, bool) {
	text := strings.ToLower(raw)
	for _, rule := range phraseRules {
		if answered && !rule.kind.remote() {
			continue
		}
		for _, phrase := range rule.phrases {
			if strings.Contains(text, phrase) {
				return rule.kind, true
			}
		}
	}
	return KindUnknown, false
}
