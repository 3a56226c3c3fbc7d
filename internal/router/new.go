package router

// Router decides which processing path an incoming message takes.
type Router interface {
	Classify(message string) Intent
}

// KeywordRouter classifies user intent with a fixed keyword set. It is
// deliberately deterministic: a message goes down the reminder path iff it
// contains one of the reminder keywords, with no further disambiguation.
type KeywordRouter struct{}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New() *KeywordRouter {
	return &KeywordRouter{}
}
