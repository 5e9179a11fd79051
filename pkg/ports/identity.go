package ports

// IDGenerator supplies content identifiers for items that have none.
type IDGenerator interface {
	NewID() (string, error)
}
