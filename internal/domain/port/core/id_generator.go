package core

// IDGenerator produces identities for locks and ambient transactions
type IDGenerator interface {
	NewID() string
}
