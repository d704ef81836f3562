// Package assistant answers visitor questions about their move.
//
// Replies come from the configured language model when one is available.
// Any failure (missing key, timeout, bad status, empty body) falls back to a
// canned answer picked by keyword, so callers always get text back.
package assistant
