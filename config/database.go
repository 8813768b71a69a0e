package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UserCollection         = "users"
	TaskCollection         = "tasks"
	ProjectCollection      = "projects"
	InvoiceCollection      = "invoices"
	AttendanceCollection   = "attendancerecords"
	DailyTaskCollection    = "dailytasks"
	EditorSheetCollection  = "editorsheets"
	LeaveCollection        = "leaves"
	LeaveBalanceCollection = "leaveBalance"
	QRCodeCollection       = "qrcodes"
)

// Database wraps the Mongo client so repositories receive their dependencies
// explicitly instead of reaching for package-level state.
type Database struct {
	Client *mongo.Client
	db     *mongo.Database
}

func ConnectDatabase(ctx context.Context, cfg *AppConfig) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetRetryWrites(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB")
	return &Database{
		Client: client,
		db:     client.Database(cfg.DBName),
	}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping reports whether the database is still reachable; the health endpoint
// maps a failure here to 503.
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.Client.Ping(ctx, readpref.Primary())
}

func (d *Database) Disconnect(ctx context.Context) {
	if err := d.Client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}

// EnsureIndexes creates the indexes the query paths depend on. Safe to call on
// every startup; Mongo treats existing identical indexes as a no-op.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := d.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = d.Collection(AttendanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance index: %w", err)
	}

	_, err = d.Collection(LeaveBalanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "year", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create leaveBalance index: %w", err)
	}

	_, err = d.Collection(LeaveCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "startDate", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create leaves index: %w", err)
	}

	return nil
}
