// Package testutil contains helpers shared by the package tests: a
// thread-safe log buffer, temporary trips files and a harness that runs the
// whole application.
package testutil
