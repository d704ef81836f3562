// Package catalog holds the static tables the funnel is built from: home-size
// presets, furniture per room type, special items, add-on services, step
// progress, room templates and the mock mover roster.
//
// Every accessor returns a fresh copy. Callers may modify what they get back
// without affecting later calls.
package catalog
