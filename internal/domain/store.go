package domain

import "time"

// Store is one restaurant location. The management key is a shared
// secret that gates every write against the store's documents; reads
// need only the store ID.
type Store struct {
	ID            string
	Name          string
	ManagementKey string
	CreatedAt     time.Time
	LastUpdated   time.Time
}

// EmployeeTiers maps employee names to their assigned tier. Names not
// present default to part-time at lookup sites.
type EmployeeTiers map[string]Tier
