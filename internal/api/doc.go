// Package api serves the MinIO Lite Admin REST API and the dashboard's
// browser bundle.
package api
