// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store statements and the response edges
// between them in SQLite or PostgreSQL.
package persistence
