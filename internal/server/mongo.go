package server

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// projectsCollectionName holds the project documents, each embedding its
// user list. Profile extensions live in a separately configured users
// collection; the two are never synchronized.
const projectsCollectionName = "ProjectDetails"

// Store wraps the MongoDB client and the two logical collections the
// handlers work with.
type Store struct {
	client          *mongo.Client
	db              *mongo.Database
	usersCollection string
}

// OpenStore connects to MongoDB and validates connectivity immediately.
func OpenStore(ctx context.Context, mongoURL, dbName, usersCollection string) (*Store, error) {
	if mongoURL == "" {
		return nil, errors.New("mongo URL is empty")
	}
	if dbName == "" {
		return nil, errors.New("database name is empty")
	}
	if usersCollection == "" {
		return nil, errors.New("users collection name is empty")
	}

	opts := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(10).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{
		client:          client,
		db:              client.Database(dbName),
		usersCollection: usersCollection,
	}, nil
}

func (st *Store) Close(ctx context.Context) error {
	return st.client.Disconnect(ctx)
}

// Projects returns the collection of project documents.
func (st *Store) Projects() *mongo.Collection {
	return st.db.Collection(projectsCollectionName)
}

// Users returns the standalone user-profile collection. Only the
// update-profile route touches it.
func (st *Store) Users() *mongo.Collection {
	return st.db.Collection(st.usersCollection)
}

// Ping reports store reachability, used by the health endpoints.
func (st *Store) Ping(ctx context.Context) error {
	return st.client.Ping(ctx, readpref.Primary())
}
