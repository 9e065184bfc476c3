package mongo

import (
	"context"
	"time"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the process-wide client and verifies connectivity. The
// client is safe for concurrent use by detached persistence goroutines.
func Connect(ctx context.Context, uri string) (*mongodrv.Client, error) {
	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// test ping
	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx2, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
