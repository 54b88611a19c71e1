package database

import (
	"context"
	"fmt"
	"hospital-records-service/internal/app/config"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	dbOptions := options.Client().ApplyURI(MongoConnectionString(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// MongoConnectionString returns the configured URI as is, otherwise builds one
// from the host settings. Credentials are only added when a username is set.
func MongoConnectionString(mongoConfig config.MongoDB) string {
	if mongoConfig.URI != "" {
		return mongoConfig.URI
	}

	connectionURL := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%s", mongoConfig.Host, mongoConfig.Port),
	}
	if mongoConfig.Username != "" {
		connectionURL.User = url.UserPassword(mongoConfig.Username, mongoConfig.Password)
	}
	return connectionURL.String()
}
