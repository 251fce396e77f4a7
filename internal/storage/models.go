package storage

import "time"

// Draft is the persisted editor text stored under a fixed key.
type Draft struct {
	Key       string
	Content   string
	UpdatedAt time.Time
}
