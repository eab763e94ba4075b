// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The mocks stand in for connected worker processes: every method records
// its call and delegates to an optional function field.
package mocks
