// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrPayloadTooLarge is reported when a request body exceeds
// [Handler.maxRequestSize]. It is matched by [statusFromError] so that both
// the early Content-Length check and a truncated body read end in 413.
var ErrPayloadTooLarge = errors.New("request payload too large")
