// Package observability carries the structured logger and Prometheus
// metrics shared by the server, services and persistence.
package observability
