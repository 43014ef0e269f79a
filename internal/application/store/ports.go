package store

type IDGenerator interface {
	NewID() string
}
