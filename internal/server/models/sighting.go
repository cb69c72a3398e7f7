// Package models contains the server-side domain records persisted by the
// repository layer.
package models

import "time"

// Sighting is a single bird-watching log entry. ID is assigned by the store
// at creation and never reassigned. CreatedAt and UpdatedAt are
// server-managed and not exposed through the public API by default.
type Sighting struct {
	ID        int64
	Name      string
	Species   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
