package entity

import (
	"fmt"
	"math"
	"time"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
)

// Role is the single-valued role of a user
type Role string

// Roles
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleCustomer Role = "customer"
)

// ParseRole validates a role name
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleCustomer:
		return Role(s), nil
	default:
		return "", errs.Invalidf("role must be one of admin, manager, customer; got %q", s)
	}
}

// User represents a loyalty program participant
type User struct {
	ID             string  // Same id as the identity record
	Role           Role    // admin, manager or customer
	IsVerified     bool    // Contact method confirmed
	points         int64   // Non-negative balance (private)
	AssignedBunkID *string // Only meaningful for managers
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Deleted        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCustomer creates an unverified customer with no points
func NewCustomer(id, firstName, lastName, email, phone string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidID
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Role:      RoleCustomer,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Points returns the current balance
func (u *User) Points() int64 {
	return u.points
}

// SetPoints loads a stored balance (for repositories). Negative values are rejected.
func (u *User) SetPoints(points int64) error {
	if points < 0 {
		return fmt.Errorf("%w: stored balance %d for user %s is negative", errs.ErrInternalServer, points, u.ID)
	}
	u.points = points
	return nil
}

// Credit adds points to the balance. A credit past MaxInt64 is ErrInvalidAmount.
func (u *User) Credit(points int64, timeProvider coreport.TimeProvider) error {
	if points < 0 {
		return errs.ErrInvalidAmount
	}
	if points > math.MaxInt64-u.points {
		return errs.WithMessage(errs.ErrInvalidAmount,
			fmt.Sprintf("crediting %d points would overflow balance %d", points, u.points))
	}
	u.points += points
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Redeem subtracts points from the balance if the balance covers them
func (u *User) Redeem(points int64, timeProvider coreport.TimeProvider) error {
	if u.points < points {
		return errs.ErrInsufficientPoints
	}
	u.points -= points
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// IsManagerOf reports whether the user manages bunkID
func (u *User) IsManagerOf(bunkID string) bool {
	return u.Role == RoleManager && u.AssignedBunkID != nil && *u.AssignedBunkID == bunkID
}

// AssignTo records the user's bunk assignment
func (u *User) AssignTo(bunkID string, timeProvider coreport.TimeProvider) {
	id := bunkID
	u.AssignedBunkID = &id
	u.UpdatedAt = timeProvider.Now()
}

// Unassign clears the bunk assignment
func (u *User) Unassign(timeProvider coreport.TimeProvider) {
	u.AssignedBunkID = nil
	u.UpdatedAt = timeProvider.Now()
}

// AssignedBunk returns the assigned bunk id or ""
func (u *User) AssignedBunk() string {
	if u.AssignedBunkID == nil {
		return ""
	}
	return *u.AssignedBunkID
}

// ChangeRole replaces the role. A manager losing the role loses the assignment too;
// callers must update the bunk side.
func (u *User) ChangeRole(role Role, timeProvider coreport.TimeProvider) {
	if role != RoleManager {
		u.AssignedBunkID = nil
	}
	u.Role = role
	u.UpdatedAt = timeProvider.Now()
}

// MarkVerified sets IsVerified and reports whether it changed
func (u *User) MarkVerified(timeProvider coreport.TimeProvider) bool {
	if u.IsVerified {
		return false
	}
	u.IsVerified = true
	u.UpdatedAt = timeProvider.Now()
	return true
}

// Rename updates the display names
func (u *User) Rename(firstName, lastName string, timeProvider coreport.TimeProvider) {
	u.FirstName = firstName
	u.LastName = lastName
	u.UpdatedAt = timeProvider.Now()
}

// MarkDeleted soft-deletes the user and drops any assignment
func (u *User) MarkDeleted(timeProvider coreport.TimeProvider) {
	u.Deleted = true
	u.AssignedBunkID = nil
	u.UpdatedAt = timeProvider.Now()
}
