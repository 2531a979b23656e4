// Package helper provides test helpers and test doubles shared by the package tests,
// most notably LogHandlerSpy for asserting on structured log records.
package helper
