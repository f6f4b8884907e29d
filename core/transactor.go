package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Transactor runs fn as a single database transaction. Every entry
// operation commits through one of these so an aborted call leaves no
// partial state behind. *db.DB satisfies it.
type Transactor interface {
	Tx(fn func(tx *db.DB) error) error
}
