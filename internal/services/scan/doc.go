// Package scan extracts statement data from uploaded documents.
//
// The scanner is a stand-in: after a processing delay it returns one of a
// fixed set of sample statements.
package scan
