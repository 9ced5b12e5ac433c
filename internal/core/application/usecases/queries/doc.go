// Package queries holds the read side of the application. Handlers read
// through the repositories of a unit of work that is never begun, so they run
// outside any transaction and never write.
package queries
