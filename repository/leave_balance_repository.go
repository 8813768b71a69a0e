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

// Default annual allowances, matching what the client displays.
const (
	defaultSickLeaveTotal   = 10
	defaultCasualLeaveTotal = 12
	defaultPaidLeaveTotal   = 20
)

var ErrBalanceNotFound = errors.New("leave balance not found")

type LeaveBalanceRepository interface {
	FindOrCreate(ctx context.Context, employeeID string, year int) (*models.LeaveBalance, error)
	ApplyUsage(ctx context.Context, employeeID string, year int, leaveType string, daysUsed int) (*models.LeaveBalance, error)
	FindAllForYear(ctx context.Context, year int) ([]models.LeaveBalance, error)
}

type leaveBalanceRepository struct {
	collection *mongo.Collection
}

func NewLeaveBalanceRepository(db *config.Database) LeaveBalanceRepository {
	return &leaveBalanceRepository{
		collection: db.Collection(config.LeaveBalanceCollection),
	}
}

func defaultBalance(employeeID string, year int) *models.LeaveBalance {
	now := time.Now().Format(time.RFC3339)
	return &models.LeaveBalance{
		EmployeeID:  employeeID,
		Year:        year,
		SickLeave:   models.LeaveBucket{Total: defaultSickLeaveTotal, Remaining: defaultSickLeaveTotal},
		CasualLeave: models.LeaveBucket{Total: defaultCasualLeaveTotal, Remaining: defaultCasualLeaveTotal},
		PaidLeave:   models.LeaveBucket{Total: defaultPaidLeaveTotal, Remaining: defaultPaidLeaveTotal},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FindOrCreate returns the employee's balance for the year, inserting the
// default allowance document on first read.
func (r *leaveBalanceRepository) FindOrCreate(ctx context.Context, employeeID string, year int) (*models.LeaveBalance, error) {
	filter := bson.M{"employeeId": employeeID, "year": year}

	var balance models.LeaveBalance
	err := r.collection.FindOne(ctx, filter).Decode(&balance)
	if err == nil {
		return &balance, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to find leave balance: %w", err)
	}

	created := defaultBalance(employeeID, year)
	result, err := r.collection.InsertOne(ctx, created)
	if err != nil {
		// A concurrent first read may have inserted it already.
		if mongo.IsDuplicateKeyError(err) {
			if err := r.collection.FindOne(ctx, filter).Decode(&balance); err == nil {
				return &balance, nil
			}
		}
		return nil, fmt.Errorf("failed to create leave balance: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid
	}
	return created, nil
}

// ApplyUsage atomically increments used and decrements remaining for one
// leave type, returning the updated document.
func (r *leaveBalanceRepository) ApplyUsage(ctx context.Context, employeeID string, year int, leaveType string, daysUsed int) (*models.LeaveBalance, error) {
	leaveType = models.NormalizeLeaveType(leaveType)
	update := bson.M{
		"$inc": bson.M{
			leaveType + ".used":      daysUsed,
			leaveType + ".remaining": -daysUsed,
		},
		"$set": bson.M{"updatedAt": time.Now().Format(time.RFC3339)},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var balance models.LeaveBalance
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"employeeId": employeeID, "year": year}, update, opts).Decode(&balance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBalanceNotFound
		}
		return nil, fmt.Errorf("failed to update leave balance: %w", err)
	}
	return &balance, nil
}

func (r *leaveBalanceRepository) FindAllForYear(ctx context.Context, year int) ([]models.LeaveBalance, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"year": year})
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer cursor.Close(ctx)

	balances := []models.LeaveBalance{}
	if err = cursor.All(ctx, &balances); err != nil {
		return nil, fmt.Errorf("failed to decode leave balances: %w", err)
	}
	return balances, nil
}
