// Package app implements the statement and response services on top of the
// repository contracts of the statements domain.
package app
