// Package library implements the circulation engine: catalog items, users,
// loans, and the System orchestrator that enforces the rules tying them
// together. Persistence and presentation live behind the Store interface and
// the cmd/circ CLI respectively; this package holds all business logic.
package library
