package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"office-management-backend/config"
)

// PeriodTotals is the raw aggregation result for one employee's attendance
// inside a reporting window.
type PeriodTotals struct {
	PresentDays int     `bson:"presentDays"`
	AbsentDays  int     `bson:"absentDays"`
	LateDays    int     `bson:"lateDays"`
	TotalHours  float64 `bson:"totalHours"`
	TotalDays   int     `bson:"totalDays"`
}

type ReportRepository interface {
	PeriodTotals(ctx context.Context, employeeID string, start, end time.Time) (*PeriodTotals, error)
	EmployeeIDs(ctx context.Context) ([]string, error)
}

type reportRepository struct {
	attendance *mongo.Collection
	users      *mongo.Collection
}

func NewReportRepository(db *config.Database) ReportRepository {
	return &reportRepository{
		attendance: db.Collection(config.AttendanceCollection),
		users:      db.Collection(config.UserCollection),
	}
}

// PeriodTotals groups the employee's attendance records in [start, end] into
// present / absent / late counts and summed hours, entirely server side.
func (r *reportRepository) PeriodTotals(ctx context.Context, employeeID string, start, end time.Time) (*PeriodTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"employeeId": employeeID,
			"createdAt":  bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"presentDays": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{"$status", bson.A{"checked-in", "checked-out", "present"}}}, 1, 0,
			}}},
			"absentDays": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", "absent"}}, 1, 0,
			}}},
			"lateDays": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", "late"}}, 1, 0,
			}}},
			"totalHours": bson.M{"$sum": bson.M{"$toDouble": bson.M{"$ifNull": bson.A{"$totalHours", 0}}}},
			"totalDays":  bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.attendance.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate period totals: %w", err)
	}
	defer cursor.Close(ctx)

	var results []PeriodTotals
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode period totals: %w", err)
	}
	if len(results) == 0 {
		return &PeriodTotals{}, nil
	}
	return &results[0], nil
}

// EmployeeIDs lists every user id as a hex string, for report fan-out.
func (r *reportRepository) EmployeeIDs(ctx context.Context) ([]string, error) {
	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID.Hex())
	}
	return ids, nil
}
