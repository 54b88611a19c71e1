package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DatabasePinger is satisfied by *mongo.Client.
type DatabasePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}
