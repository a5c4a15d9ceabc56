// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package upload holds the pure building blocks of the batch upload
// pipeline: base64 encoding of files, greedy order-preserving chunk planning
// under a payload ceiling, folding chunk responses into one batch result and
// classifying failures into actionable error kinds.
//
// Nothing in this package performs network I/O. The sequential transport
// loop lives in the service layer and talks to the ingestion endpoint
// through the adapter package.
package upload
