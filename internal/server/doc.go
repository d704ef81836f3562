// Package server exposes the funnel over HTTP.
//
// Routes are grouped under /api: stateless helpers (chat, insight, document
// scan, catalog, ticker) and per-session endpoints that dispatch actions,
// run step controllers and read estimates. Every JSON reply carries a
// "success" flag; failures add an "error" object with a code and message.
// /healthz and /metrics sit outside the group.
package server
