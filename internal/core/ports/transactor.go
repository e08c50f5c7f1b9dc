package ports

import "context"

// Transactor runs a unit of work so that its writes become visible all at once
// or not at all.
//
// fn receives a context bound to the transaction; repositories called with that
// context take part in it. A non-nil error from fn, a panic or a cancelled
// context rolls the transaction back and the error is returned unchanged.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
