package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

// ConnectMongo connects to the storefront's MongoDB and selects its database.
func ConnectMongo() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = fmt.Sprintf("mongodb://%s:%s", getEnv("MONGO_HOST", "localhost"), getEnv("MONGO_PORT", "27017"))
		log.Println("⚠️ MONGO_URI not set, using local MongoDB:", mongoURI)
	}
	dbName := getEnv("MONGO_DBNAME", "storefront")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	MongoClient = client
	MongoDB = client.Database(dbName)
	log.Printf("✅ MongoDB connected (db=%s)", dbName)
}

func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("❌ Error disconnecting MongoDB client: %v", err)
		return
	}
	log.Println("✅ MongoDB connection closed")
}
