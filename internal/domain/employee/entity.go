package employee

import (
	"time"
)

// Employee is the stable identity a free-text time-clock name resolves to.
// Name is the natural key, trimmed and unique; records are created on first
// encounter and never updated or deleted by ingestion.
type Employee struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
