package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"office-management-backend/config"
	"office-management-backend/models"
)

type DailyTaskRepository interface {
	FindAllWithEmployee(ctx context.Context) ([]models.DailyTaskWithEmployee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DailyTask, error)
	Create(ctx context.Context, task *models.DailyTask) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type dailyTaskRepository struct {
	collection *mongo.Collection
}

func NewDailyTaskRepository(db *config.Database) DailyTaskRepository {
	return &dailyTaskRepository{
		collection: db.Collection(config.DailyTaskCollection),
	}
}

// FindAllWithEmployee left-joins each daily task against users by employeeId;
// tasks whose employee no longer exists keep a null employeeName.
func (r *dailyTaskRepository) FindAllWithEmployee(ctx context.Context) ([]models.DailyTaskWithEmployee, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "employeeId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "employeeDetails"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "employeeName", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gt", Value: bson.A{bson.D{{Key: "$size", Value: "$employeeDetails"}}, 0}}},
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$employeeDetails.name", 0}}},
				nil,
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "employeeDetails", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.DailyTaskWithEmployee{}
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode daily tasks: %w", err)
	}
	return tasks, nil
}

func (r *dailyTaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DailyTask, error) {
	var task models.DailyTask
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find daily task: %w", err)
	}
	return &task, nil
}

func (r *dailyTaskRepository) Create(ctx context.Context, task *models.DailyTask) (*mongo.InsertOneResult, error) {
	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily task: %w", err)
	}
	return result, nil
}

func (r *dailyTaskRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updatedAt"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update daily task: %w", err)
	}
	return result, nil
}

func (r *dailyTaskRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete daily task: %w", err)
	}
	return result, nil
}
