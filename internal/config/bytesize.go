// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/docker/go-units"
)

// ByteSize is a size in bytes that can be written as "512", "5MB" or
// "30MiB" in env vars, flags and JSON. Suffixes are binary (1MB = 1024KB).
//
// It implements encoding.TextUnmarshaler (caarlos0/env), flag.Value and
// json.Unmarshaler.
type ByteSize int64

// Int64 returns the size as a plain int64.
func (b ByteSize) Int64() int64 {
	return int64(b)
}

// String renders the size in binary units, e.g. "30MiB".
func (b ByteSize) String() string {
	return units.BytesSize(float64(b))
}

// Set implements flag.Value.
func (b *ByteSize) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// UnmarshalText parses a human-readable size.
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := units.RAMInBytes(string(text))
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", string(text), err)
	}
	if v < 0 {
		return fmt.Errorf("invalid size %q: must not be negative", string(text))
	}
	*b = ByteSize(v)
	return nil
}

// UnmarshalJSON accepts either a JSON number of bytes or a size string.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		if value < 0 {
			return fmt.Errorf("invalid size %v: must not be negative", value)
		}
		*b = ByteSize(value)
		return nil
	case string:
		return b.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid size %s", string(data))
	}
}

// MarshalJSON writes the size as a string such as "30MiB".
func (b ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
