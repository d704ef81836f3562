// Package insight writes a short paragraph about a visitor's move plan.
package insight
