package database

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. 對應原系統的資料表
const (
	ColClasses        = "classes"
	ColSessions       = "sessions"
	ColAttendees      = "attendees"
	ColCustomFields   = "custom_fields"
	ColAttendeeValues = "attendee_values"
	ColRoster         = "class_attendees"
	ColCheckins       = "checkins"
	ColUsers          = "users"
	ColOrgInfo        = "org_info"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error
)

// Connect 連接 MongoDB (只跑一次) 並回傳資料庫 handle
// Stores receive this handle through their constructors; nothing else in the
// codebase touches the client directly.
func Connect() (*mongo.Database, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "course_signin"
	}

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			return
		}
		connectErr = client.Ping(ctx, readpref.Primary())
		if connectErr != nil {
			return
		}
		log.Println("✅ MongoDB connected successfully")
	})
	if connectErr != nil {
		return nil, connectErr
	}
	return client.Database(dbName), nil
}

// EnsureIndexes 建立唯一索引, the uniqueness rules the stores rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		col  string
		keys bson.D
	}{
		{ColAttendees, bson.D{{Key: "name", Value: 1}}},
		{ColAttendees, bson.D{{Key: "hash", Value: 1}}},
		{ColCustomFields, bson.D{{Key: "name", Value: 1}}},
		{ColAttendeeValues, bson.D{{Key: "attendeeId", Value: 1}, {Key: "fieldId", Value: 1}}},
		{ColSessions, bson.D{{Key: "classId", Value: 1}, {Key: "week", Value: 1}}},
		{ColRoster, bson.D{{Key: "classId", Value: 1}, {Key: "attendeeId", Value: 1}}},
		{ColCheckins, bson.D{{Key: "sessionId", Value: 1}, {Key: "attendeeId", Value: 1}}},
		{ColUsers, bson.D{{Key: "username", Value: 1}}},
	}

	for _, s := range specs {
		_, err := db.Collection(s.col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    s.keys,
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
