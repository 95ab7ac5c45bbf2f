package store

import (
	"github.com/jmoiron/sqlx"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sqlx.DB and *sqlx.Tx, allowing our code
// to work with either a database connection or a transaction.
//
// Rebind is part of the contract so queries can be written once with
// '?' placeholders and translated for the driver in use.
type DBTX interface {
	sqlx.ExtContext
}
