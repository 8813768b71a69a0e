package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"office-management-backend/config"
	"office-management-backend/models"
)

var ErrEmailTaken = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	Stats(ctx context.Context) (*models.EmployeeStats, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *config.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(config.UserCollection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updatedAt"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete employee: %w", err)
	}
	return result, nil
}

func (r *userRepository) Stats(ctx context.Context) (*models.EmployeeStats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	statusCounts, err := r.groupCounts(ctx, "$status")
	if err != nil {
		return nil, err
	}

	stats := &models.EmployeeStats{
		TotalEmployees:         total,
		DepartmentDistribution: []models.DepartmentCount{},
	}
	for _, sc := range statusCounts {
		switch sc.Status {
		case "active":
			stats.PresentToday = sc.Count
		case "on_leave":
			stats.OnLeave = sc.Count
		}
	}

	deptCursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department distribution: %w", err)
	}
	defer deptCursor.Close(ctx)

	var departments []models.DepartmentCount
	if err = deptCursor.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("failed to decode department distribution: %w", err)
	}
	for _, dept := range departments {
		if dept.Department == "" {
			dept.Department = "Unassigned"
		}
		stats.DepartmentDistribution = append(stats.DepartmentDistribution, dept)
	}

	salaryCursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "averageSalary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate average salary: %w", err)
	}
	defer salaryCursor.Close(ctx)

	var salaryResult []struct {
		AverageSalary float64 `bson:"averageSalary"`
	}
	if err = salaryCursor.All(ctx, &salaryResult); err != nil {
		return nil, fmt.Errorf("failed to decode average salary: %w", err)
	}
	if len(salaryResult) > 0 {
		stats.AverageSalary = int64(math.Round(salaryResult[0].AverageSalary))
	}

	return stats, nil
}

func (r *userRepository) groupCounts(ctx context.Context, field string) ([]models.StatusCount, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.StatusCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}
	return counts, nil
}
