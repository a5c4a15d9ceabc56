// Package utils holds small helpers shared by the client and the dev
// ingestion server: JSON response writing, the preconfigured resty client
// and time-ordered id generation.
package utils
