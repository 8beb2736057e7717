package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// sessionBinder attaches an open transaction session to whatever context the
// caller passes, so repositories obtained from the factory join the transaction.
type sessionBinder struct {
	session mongo.Session
}

func (b sessionBinder) bind(ctx context.Context) context.Context {
	if b.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, b.session)
}
