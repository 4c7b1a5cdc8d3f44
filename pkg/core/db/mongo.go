package db

import (
	"context"
	"time"

	"github.com/zuchzub/GroupGuard/pkg/config"
	"github.com/zuchzub/GroupGuard/pkg/core/cache"

	"github.com/Laky-64/gologging"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database encapsulates the MongoDB connection, collections, and read caches.
type Database struct {
	Client     *mongo.Client
	DB         *mongo.Database
	ChatDB     *mongo.Collection
	UserDB     *mongo.Collection
	RoleDB     *mongo.Collection
	WarnDB     *mongo.Collection
	FilterDB   *mongo.Collection
	ActivityDB *mongo.Collection
	ChatCache  *cache.Cache[ChatConfig]
	UserCache  *cache.Cache[struct{}]
}

// Instance is the global singleton for the database.
var Instance *Database

// InitDatabase initializes the database connection and sets up the global instance.
// It returns an error if the connection fails or pinging the database is unsuccessful.
func InitDatabase(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.Conf.MongoUri))
	if err != nil {
		return err
	}

	db := client.Database(config.Conf.DbName)

	Instance = &Database{
		Client:     client,
		DB:         db,
		ChatDB:     db.Collection("chats"),
		UserDB:     db.Collection("users"),
		RoleDB:     db.Collection("roles"),
		WarnDB:     db.Collection("warnings"),
		FilterDB:   db.Collection("filters"),
		ActivityDB: db.Collection("activity"),
		ChatCache:  cache.NewCache[ChatConfig](20 * time.Minute),
		UserCache:  cache.NewCache[struct{}](20 * time.Minute),
	}

	if err := Instance.Ping(ctx); err != nil {
		return err
	}

	gologging.Info("[DB] The database connection has been successfully established.")
	return nil
}

// Ping verifies the connection to the MongoDB server.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

// Close gracefully closes the database connection.
func (db *Database) Close(ctx context.Context) error {
	gologging.Info("[DB] Closing the database connection...")
	return db.Client.Disconnect(ctx)
}
