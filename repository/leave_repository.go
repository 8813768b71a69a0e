package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"office-management-backend/config"
	"office-management-backend/models"
)

var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrLeaveAlreadyDecided = errors.New("leave request already decided")
)

type LeaveRepository interface {
	FindAll(ctx context.Context, filter models.LeaveFilter) ([]models.Leave, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
	Create(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error)
	Decide(ctx context.Context, id primitive.ObjectID, status, approvedBy string) (*models.Leave, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type leaveRepository struct {
	client            *mongo.Client
	collection        *mongo.Collection
	balanceCollection *mongo.Collection
}

func NewLeaveRepository(db *config.Database) LeaveRepository {
	return &leaveRepository{
		client:            db.Client,
		collection:        db.Collection(config.LeaveCollection),
		balanceCollection: db.Collection(config.LeaveBalanceCollection),
	}
}

func (r *leaveRepository) FindAll(ctx context.Context, filter models.LeaveFilter) ([]models.Leave, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employeeId"] = filter.EmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.LeaveType != "" {
		query["leaveType"] = filter.LeaveType
	}
	if filter.StartDate != "" || filter.EndDate != "" {
		dateRange := bson.M{}
		if filter.StartDate != "" {
			dateRange["$gte"] = filter.StartDate
		}
		if filter.EndDate != "" {
			dateRange["$lte"] = filter.EndDate
		}
		query["startDate"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer cursor.Close(ctx)

	leaves := []models.Leave{}
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}
	return leaves, nil
}

func (r *leaveRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	var leave models.Leave
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&leave)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave: %w", err)
	}
	return &leave, nil
}

func (r *leaveRepository) Create(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	leave.ID = primitive.NewObjectID()
	now := time.Now().Format(time.RFC3339)
	leave.CreatedAt = now
	leave.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, leave)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return result, nil
}

// Decide sets the approval status. Only pending requests can be decided, so a
// repeated approval cannot debit the balance twice. An approval also debits
// the employee's leave balance in the same MongoDB transaction, so the status
// and the balance can never diverge under a partial failure.
func (r *leaveRepository) Decide(ctx context.Context, id primitive.ObjectID, status, approvedBy string) (*models.Leave, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().Format(time.RFC3339)
		update := bson.M{"$set": bson.M{
			"status":       status,
			"approvedBy":   approvedBy,
			"approvedDate": now,
			"updatedAt":    now,
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var leave models.Leave
		err := r.collection.FindOneAndUpdate(sc, bson.M{"_id": id, "status": "pending"}, update, opts).Decode(&leave)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Distinguish a missing request from one already decided.
				count, countErr := r.collection.CountDocuments(sc, bson.M{"_id": id})
				if countErr == nil && count > 0 {
					return nil, ErrLeaveAlreadyDecided
				}
				return nil, ErrLeaveNotFound
			}
			return nil, fmt.Errorf("failed to update leave status: %w", err)
		}

		if status == "approved" {
			if err := r.debitBalance(sc, &leave); err != nil {
				return nil, err
			}
		}
		return &leave, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Leave), nil
}

// debitBalance increments used / decrements remaining for the leave's type in
// the current year's balance document, creating the default document first
// when the employee has never been read.
func (r *leaveRepository) debitBalance(ctx mongo.SessionContext, leave *models.Leave) error {
	year := time.Now().Year()
	balance := defaultBalance(leave.EmployeeID, year)

	// Upsert with $setOnInsert so an existing balance is left untouched.
	_, err := r.balanceCollection.UpdateOne(ctx,
		bson.M{"employeeId": leave.EmployeeID, "year": year},
		bson.M{"$setOnInsert": balance},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure leave balance: %w", err)
	}

	leaveType := models.NormalizeLeaveType(leave.LeaveType)
	_, err = r.balanceCollection.UpdateOne(ctx,
		bson.M{"employeeId": leave.EmployeeID, "year": year},
		bson.M{
			"$inc": bson.M{
				leaveType + ".used":      leave.Days,
				leaveType + ".remaining": -leave.Days,
			},
			"$set": bson.M{"updatedAt": time.Now().Format(time.RFC3339)},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}
	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete leave: %w", err)
	}
	return result, nil
}
