// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the order-intake command-line application.
//
// It turns flags and file arguments into an order, runs the upload behind
// the terminal progress view and prints the outcome. Health, remote lookup
// and local journal history are separate modes of the same binary.
package client
