// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (funnel state, estimates, assistant payloads) and
// contracts (interfaces) only.
package domain
