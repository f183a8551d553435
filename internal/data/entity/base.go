package entity

import (
	"time"
)

// BaseSimple carries the store-assigned identity of a record.
type BaseSimple struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
