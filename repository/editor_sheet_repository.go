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

type EditorSheetRepository interface {
	FindAllWithEmployee(ctx context.Context) ([]models.EditorSheetWithEmployee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EditorSheet, error)
	Create(ctx context.Context, sheet *models.EditorSheet) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type editorSheetRepository struct {
	collection *mongo.Collection
}

func NewEditorSheetRepository(db *config.Database) EditorSheetRepository {
	return &editorSheetRepository{
		collection: db.Collection(config.EditorSheetCollection),
	}
}

func (r *editorSheetRepository) FindAllWithEmployee(ctx context.Context) ([]models.EditorSheetWithEmployee, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "employeeId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "employeeInfo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "employeeName", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gt", Value: bson.A{bson.D{{Key: "$size", Value: "$employeeInfo"}}, 0}}},
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$employeeInfo.name", 0}}},
				"Unknown",
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "employeeInfo", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate editor sheets: %w", err)
	}
	defer cursor.Close(ctx)

	sheets := []models.EditorSheetWithEmployee{}
	if err = cursor.All(ctx, &sheets); err != nil {
		return nil, fmt.Errorf("failed to decode editor sheets: %w", err)
	}
	return sheets, nil
}

func (r *editorSheetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EditorSheet, error) {
	var sheet models.EditorSheet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sheet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find editor sheet: %w", err)
	}
	return &sheet, nil
}

func (r *editorSheetRepository) Create(ctx context.Context, sheet *models.EditorSheet) (*mongo.InsertOneResult, error) {
	sheet.ID = primitive.NewObjectID()
	sheet.CreatedAt = time.Now()
	sheet.UpdatedAt = time.Now()
	if sheet.LastModified.IsZero() {
		sheet.LastModified = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create editor sheet: %w", err)
	}
	return result, nil
}

func (r *editorSheetRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updatedAt"] = time.Now()
	updateData["lastModified"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update editor sheet: %w", err)
	}
	return result, nil
}

func (r *editorSheetRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete editor sheet: %w", err)
	}
	return result, nil
}
