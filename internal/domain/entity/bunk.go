package entity

import (
	"slices"
	"time"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
)

// Bunk is a physical location where managers serve customers
type Bunk struct {
	ID         string
	Name       string
	Location   string
	District   string
	State      string
	Pincode    string
	ManagerIDs []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BunkSnapshot is the copy of a bunk stored inside audit records
type BunkSnapshot struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// NewBunk creates a bunk with no managers
func NewBunk(id, name, location, district, state, pincode string, timeProvider coreport.TimeProvider) *Bunk {
	now := timeProvider.Now()
	return &Bunk{
		ID:         id,
		Name:       name,
		Location:   location,
		District:   district,
		State:      state,
		Pincode:    pincode,
		ManagerIDs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Snapshot returns the audit view of the bunk
func (b *Bunk) Snapshot() BunkSnapshot {
	return BunkSnapshot{
		Name:     b.Name,
		Location: b.Location,
		District: b.District,
		State:    b.State,
		Pincode:  b.Pincode,
	}
}

// ToMap converts the snapshot for audit details
func (s BunkSnapshot) ToMap() map[string]any {
	return map[string]any{
		"name":     s.Name,
		"location": s.Location,
		"district": s.District,
		"state":    s.State,
		"pincode":  s.Pincode,
	}
}

// HasManager reports whether managerID is in the set
func (b *Bunk) HasManager(managerID string) bool {
	return slices.Contains(b.ManagerIDs, managerID)
}

// AddManager adds managerID to the set, keeping it duplicate-free
func (b *Bunk) AddManager(managerID string, timeProvider coreport.TimeProvider) {
	if b.HasManager(managerID) {
		return
	}
	b.ManagerIDs = append(b.ManagerIDs, managerID)
	b.UpdatedAt = timeProvider.Now()
}

// RemoveManager drops managerID from the set
func (b *Bunk) RemoveManager(managerID string, timeProvider coreport.TimeProvider) {
	idx := slices.Index(b.ManagerIDs, managerID)
	if idx < 0 {
		return
	}
	b.ManagerIDs = slices.Delete(b.ManagerIDs, idx, idx+1)
	b.UpdatedAt = timeProvider.Now()
}
