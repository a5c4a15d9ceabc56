// Package http implements the HTTP transport of the dev ingestion endpoint.
//
// It exposes the chunk ingestion route, the health and order lookup route,
// and the stored-file download route. Request tracing, access logging,
// response compression and the request size limit are handled here before
// requests are delegated to the service layer.
package http
