package core

// ReferenceGenerator produces globally unique identifiers for transaction
// references and user IDs.
type ReferenceGenerator interface {
	NewReference() string
}
