// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/MKhiriev/go-order-intake/models"
	"github.com/dustin/go-humanize"
)

// RenderSummary renders the outcome of one UploadBatch call. Files stored
// by completed chunks are listed even when the batch was aborted.
func RenderSummary(orderID string, result models.BatchResult, err error) string {
	var b strings.Builder

	switch {
	case err != nil:
		b.WriteString(errorStyle.Render("Upload failed"))
	case result.HasPartialFailure():
		b.WriteString(warnStyle.Render("Uploaded with errors"))
	default:
		b.WriteString(okStyle.Render("Upload complete"))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Order:   %s\n", orderID)
	fmt.Fprintf(&b, "Files:   %d of %d stored\n", result.UploadedCount, result.TotalCount)
	if result.TotalChunks > 0 {
		fmt.Fprintf(&b, "Chunks:  %d of %d sent\n", result.ChunksSent, result.TotalChunks)
		if !result.Complete() {
			fmt.Fprintf(&b, "Unsent:  %d chunk(s), resend the order to store their files\n",
				result.TotalChunks-result.ChunksSent)
		}
	}

	if len(result.Files) > 0 {
		b.WriteString("\n")
		for _, f := range result.Files {
			fmt.Fprintf(&b, "  %s %s (%s)\n", okStyle.Render("✓"), f.Name, humanize.IBytes(uint64(f.Size)))
			if f.WebViewLink != "" {
				fmt.Fprintf(&b, "    %s\n", linkStyle.Render(f.WebViewLink))
			}
		}
	}

	if result.HasPartialFailure() {
		b.WriteString("\n")
		for _, e := range result.Errors {
			name := e.Name
			if name == "" {
				name = fmt.Sprintf("file #%d", e.Index+1)
			}
			fmt.Fprintf(&b, "  %s %s: %s\n", errorStyle.Render("✗"), name, e.Error)
		}
	}

	if err != nil {
		b.WriteString("\n")
		b.WriteString(renderUploadError(err))
		b.WriteString("\n")
	}

	return summaryStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderUploadError(err error) string {
	var uploadErr *upload.Error
	if !errors.As(err, &uploadErr) {
		return errorStyle.Render("Error: ") + err.Error()
	}

	var b strings.Builder
	b.WriteString(errorStyle.Render("Error: "))
	b.WriteString(uploadErr.Message)
	if uploadErr.File != "" {
		fmt.Fprintf(&b, "\nFile:    %s", uploadErr.File)
	}
	if uploadErr.ChunkIndex >= 0 {
		fmt.Fprintf(&b, "\nChunk:   %d", uploadErr.ChunkIndex+1)
	}
	if uploadErr.StatusCode != 0 {
		fmt.Fprintf(&b, "\nStatus:  %d", uploadErr.StatusCode)
	}
	fmt.Fprintf(&b, "\nKind:    %s/%s", uploadErr.Category, uploadErr.Kind)
	return b.String()
}

// RenderHealth renders the endpoint health answer.
func RenderHealth(status models.HealthStatus) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ingestion endpoint"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Status:  %s\n", status.Status)
	fmt.Fprintf(&b, "Version: %s\n", valueOrNA(status.Version))
	if !status.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Time:    %s", status.Timestamp.Format("2006-01-02 15:04:05 MST"))
	}
	return summaryStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderOrder renders a stored order record under title.
func RenderOrder(title string, order models.OrderRecord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Order:   %s\n", order.OrderID)
	fmt.Fprintf(&b, "Total:   %s\n", order.Total.StringFixed(2))
	if order.VPA != "" {
		fmt.Fprintf(&b, "VPA:     %s\n", order.VPA)
	}
	fmt.Fprintf(&b, "Chunks:  %d of %d stored\n", order.ChunksStored, order.TotalChunks)
	fmt.Fprintf(&b, "Files:   %d\n", order.UploadedCount)
	if !order.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "Updated: %s\n", humanize.Time(order.UpdatedAt))
	}

	for _, f := range order.Files {
		fmt.Fprintf(&b, "  %s %s\n", okStyle.Render("✓"), f.Name)
	}

	if order.LastError != "" {
		b.WriteString(errorStyle.Render("Last error: "))
		b.WriteString(order.LastError)
	}

	return summaryStyle.Render(strings.TrimRight(b.String(), "\n"))
}
