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

type AttendanceRepository interface {
	FindPage(ctx context.Context, limit, skip int64) (*models.AttendancePage, error)
	FindAll(ctx context.Context) ([]models.AttendanceRecord, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AttendanceRecord, error)
	FindByEmployeeName(ctx context.Context, employeeName string) ([]models.AttendanceRecord, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.AttendanceRecord, error)
	Create(ctx context.Context, record *models.AttendanceRecord) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)

	CreateQRCode(ctx context.Context, code *models.QRCode) (*mongo.InsertOneResult, error)
	FindActiveQRCode(ctx context.Context, date string) (*models.QRCode, error)
}

type attendanceRepository struct {
	collection       *mongo.Collection
	qrCodeCollection *mongo.Collection
}

func NewAttendanceRepository(db *config.Database) AttendanceRepository {
	return &attendanceRepository{
		collection:       db.Collection(config.AttendanceCollection),
		qrCodeCollection: db.Collection(config.QRCodeCollection),
	}
}

// FindPage returns the newest records first, alongside the total count used by
// the client's pager.
func (r *attendanceRepository) FindPage(ctx context.Context, limit, skip int64) (*models.AttendancePage, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance records: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}

	return &models.AttendancePage{
		Data:  records,
		Total: total,
		Limit: limit,
		Skip:  skip,
	}, nil
}

func (r *attendanceRepository) FindAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) FindByEmployeeName(ctx context.Context, employeeName string) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"employeeName": employeeName}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance by employee name: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.collection.FindOne(ctx, bson.M{"employeeId": employeeID, "date": date}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by employee and date: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) (*mongo.InsertOneResult, error) {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updatedAt"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) CreateQRCode(ctx context.Context, code *models.QRCode) (*mongo.InsertOneResult, error) {
	code.ID = primitive.NewObjectID()
	code.CreatedAt = time.Now()

	result, err := r.qrCodeCollection.InsertOne(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to store QR code: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) FindActiveQRCode(ctx context.Context, date string) (*models.QRCode, error) {
	filter := bson.M{
		"date":      date,
		"expiresAt": bson.M{"$gt": time.Now()},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var code models.QRCode
	err := r.qrCodeCollection.FindOne(ctx, filter, opts).Decode(&code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active QR code: %w", err)
	}
	return &code, nil
}
