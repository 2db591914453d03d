package models

import "time"

// Backup records a JSON snapshot file written to the local backup directory.
type Backup struct {
	ID        string    `gorm:"primaryKey;size:64"` // UUID
	Filename  string    `gorm:"size:255;not null"`
	Catches   int       `gorm:"not null"` // record count at snapshot time
	SizeBytes int64     `gorm:"not null"`
	CreatedAt time.Time
}
