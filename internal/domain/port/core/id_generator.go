package core

// IDGenerator produces opaque unique identifiers for users, bunks and audit records
type IDGenerator interface {
	NewID() string
}
