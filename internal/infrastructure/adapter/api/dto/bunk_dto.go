package dto

import (
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// CreateBunkRequest describes a new bunk
type CreateBunkRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// CreateBunkResponse returns the new bunk's id
type CreateBunkResponse struct {
	Status string `json:"status"`
	BunkID string `json:"bunkId"`
}

// AssignManagerRequest names the manager to assign
type AssignManagerRequest struct {
	ManagerUID string `json:"managerUid" binding:"required"`
}

// BunkResponse is the public view of a bunk
type BunkResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	District   string    `json:"district"`
	State      string    `json:"state"`
	Pincode    string    `json:"pincode"`
	ManagerIDs []string  `json:"managerIds"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BunkEnvelope wraps one bunk
type BunkEnvelope struct {
	Status string       `json:"status"`
	Bunk   BunkResponse `json:"bunk"`
}

// BunkListResponse wraps a list of bunks
type BunkListResponse struct {
	Status string         `json:"status"`
	Bunks  []BunkResponse `json:"bunks"`
}

// NewBunkResponse maps a bunk entity
func NewBunkResponse(b *entity.Bunk) BunkResponse {
	managers := b.ManagerIDs
	if managers == nil {
		managers = []string{}
	}
	return BunkResponse{
		ID:         b.ID,
		Name:       b.Name,
		Location:   b.Location,
		District:   b.District,
		State:      b.State,
		Pincode:    b.Pincode,
		ManagerIDs: managers,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// NewBunkListResponse maps a slice of bunks
func NewBunkListResponse(bunks []*entity.Bunk) BunkListResponse {
	out := make([]BunkResponse, 0, len(bunks))
	for _, b := range bunks {
		out = append(out, NewBunkResponse(b))
	}
	return BunkListResponse{Status: StatusSuccess, Bunks: out}
}
