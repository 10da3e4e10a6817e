// Package memory provides in-process implementations of the store interfaces.
// It backs the server when database.driver is "memory" and is used by the
// router tests.
package memory
