// Package seeder replaces collections with deterministic sample data. It is
// reachable only through the admin-guarded /api/seed routes.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/config"
	"office-management-backend/models"
	"office-management-backend/pkg/attendance"
	"office-management-backend/pkg/password"
)

var ErrUnknownResource = errors.New("unknown seed resource")

type Seeder struct {
	db *config.Database
}

func New(db *config.Database) *Seeder {
	return &Seeder{db: db}
}

// Seed replaces one named collection. Returns the number of inserted docs.
func (s *Seeder) Seed(ctx context.Context, resource string) (int, error) {
	switch resource {
	case "employees":
		return s.seedEmployees(ctx)
	case "tasks":
		return s.seedTasks(ctx)
	case "projects":
		return s.seedProjects(ctx)
	case "invoices":
		return s.seedInvoices(ctx)
	case "attendance":
		return s.seedAttendance(ctx)
	case "leaves":
		return s.seedLeaves(ctx)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownResource, resource)
}

// SeedAll reseeds every collection and returns counts per resource.
func (s *Seeder) SeedAll(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, resource := range []string{"employees", "tasks", "projects", "invoices", "attendance", "leaves"} {
		n, err := s.Seed(ctx, resource)
		if err != nil {
			return counts, err
		}
		counts[resource] = n
	}
	return counts, nil
}

func (s *Seeder) replace(ctx context.Context, collection string, docs []interface{}) (int, error) {
	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", collection, err)
	}
	result, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", collection, err)
	}
	log.Printf("seeded %s with %d documents", collection, len(result.InsertedIDs))
	return len(result.InsertedIDs), nil
}

func (s *Seeder) seedEmployees(ctx context.Context) (int, error) {
	hashed, err := password.HashPassword("password123")
	if err != nil {
		return 0, err
	}

	now := time.Now()
	names := []struct {
		name, email, role, department string
		salary                        float64
	}{
		{"Aarav Sharma", "aarav@office.dev", "admin", "Engineering", 95000},
		{"Priya Patel", "priya@office.dev", "employee", "Engineering", 78000},
		{"Rohan Gupta", "rohan@office.dev", "employee", "Design", 69000},
		{"Sneha Iyer", "sneha@office.dev", "employee", "Marketing", 62000},
		{"Vikram Singh", "vikram@office.dev", "employee", "Sales", 58000},
	}

	docs := make([]interface{}, 0, len(names))
	for i, n := range names {
		docs = append(docs, models.User{
			ID:          primitive.NewObjectID(),
			Name:        n.name,
			Email:       n.email,
			Password:    hashed,
			Role:        n.role,
			Department:  n.department,
			Salary:      n.salary,
			Status:      "active",
			JoiningDate: now.AddDate(-1, -i, 0).Format("2006-01-02"),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return s.replace(ctx, config.UserCollection, docs)
}

func (s *Seeder) seedTasks(ctx context.Context) (int, error) {
	now := time.Now()
	docs := []interface{}{
		models.Task{
			ID: primitive.NewObjectID(), Title: "Finalize Q3 roadmap", Priority: "high",
			Status: "inProgress", Assignee: models.TaskAssignee{Name: "Aarav Sharma"},
			DueDate: now.AddDate(0, 0, 7).Format("2006-01-02"), Tags: []string{"planning"},
			CreatedAt: now, UpdatedAt: now,
		},
		models.Task{
			ID: primitive.NewObjectID(), Title: "Refresh landing page copy", Priority: "medium",
			Status: "todo", Assignee: models.TaskAssignee{Name: "Sneha Iyer"},
			DueDate: now.AddDate(0, 0, 14).Format("2006-01-02"), Tags: []string{"marketing"},
			CreatedAt: now, UpdatedAt: now,
		},
		models.Task{
			ID: primitive.NewObjectID(), Title: "Fix invoice rounding bug", Priority: "high",
			Status: "completed", Assignee: models.TaskAssignee{Name: "Priya Patel"},
			DueDate: now.Format("2006-01-02"), Tags: []string{"billing", "bug"},
			CreatedAt: now, UpdatedAt: now,
		},
	}
	return s.replace(ctx, config.TaskCollection, docs)
}

func (s *Seeder) seedProjects(ctx context.Context) (int, error) {
	now := time.Now()
	docs := []interface{}{
		models.Project{
			ID: primitive.NewObjectID(), Name: "Client Portal", Progress: 65, Status: "active",
			Priority: "high", Deadline: now.AddDate(0, 2, 0).Format("2006-01-02"),
			Team: []string{"Aarav Sharma", "Priya Patel"}, Tasks: models.ProjectTaskCounts{Total: 24, Completed: 16},
			CreatedAt: now, UpdatedAt: now,
		},
		models.Project{
			ID: primitive.NewObjectID(), Name: "Brand Refresh", Progress: 30, Status: "active",
			Priority: "medium", Deadline: now.AddDate(0, 3, 0).Format("2006-01-02"),
			Team: []string{"Rohan Gupta", "Sneha Iyer"}, Tasks: models.ProjectTaskCounts{Total: 12, Completed: 4},
			CreatedAt: now, UpdatedAt: now,
		},
	}
	return s.replace(ctx, config.ProjectCollection, docs)
}

func (s *Seeder) seedInvoices(ctx context.Context) (int, error) {
	now := time.Now()
	docs := []interface{}{
		models.Invoice{
			ID: primitive.NewObjectID(), Company: "Acme Corp", Client: "John Mathews",
			Amount: 12000, GSTAmount: 2160, TotalAmount: 14160, HasGST: true, GSTPercentage: 18,
			Status: "paid", DueDate: now.AddDate(0, 0, -10).Format("2006-01-02"),
			IssuedDate: now.AddDate(0, -1, 0).Format("2006-01-02"),
			CreatedAt:  now, UpdatedAt: now,
		},
		models.Invoice{
			ID: primitive.NewObjectID(), Company: "Globex", Client: "Maria Lopez",
			Amount: 8000, TotalAmount: 8000,
			Status: "pending", DueDate: now.AddDate(0, 0, 15).Format("2006-01-02"),
			IssuedDate: now.Format("2006-01-02"),
			CreatedAt:  now, UpdatedAt: now,
		},
		models.Invoice{
			ID: primitive.NewObjectID(), Company: "Initech", Client: "Sam Okafor",
			Amount: 20000, GSTAmount: 3600, TotalAmount: 23600, HasGST: true, GSTPercentage: 18,
			Status: "overdue", DueDate: now.AddDate(0, 0, -30).Format("2006-01-02"),
			IssuedDate: now.AddDate(0, -2, 0).Format("2006-01-02"),
			CreatedAt:  now, UpdatedAt: now,
		},
	}
	return s.replace(ctx, config.InvoiceCollection, docs)
}

func (s *Seeder) seedAttendance(ctx context.Context) (int, error) {
	now := time.Now()
	names := []string{"Aarav Sharma", "Priya Patel", "Rohan Gupta"}

	docs := []interface{}{}
	for day := 0; day < 5; day++ {
		date := now.AddDate(0, 0, -day)
		for i, name := range names {
			checkIn := time.Date(date.Year(), date.Month(), date.Day(), 9, 30+10*i, 0, 0, date.Location())
			checkOut := checkIn.Add(8*time.Hour + 15*time.Minute)
			worked := checkOut.Sub(checkIn)

			status := attendance.StatusCheckedOut
			if day == 2 && i == 1 {
				status = attendance.StatusLate
			}

			docs = append(docs, models.AttendanceRecord{
				ID:           primitive.NewObjectID(),
				EmployeeID:   fmt.Sprintf("EMP-%03d", i+1),
				EmployeeName: name,
				Department:   "Engineering",
				Date:         date.Format("2006-01-02"),
				CheckInTime:  &checkIn,
				CheckOutTime: &checkOut,
				Status:       status,
				TotalHours:   worked.Hours(),
				Hours:        attendance.FormatHours(worked),
				CreatedAt:    checkIn,
				UpdatedAt:    checkOut,
			})
		}
	}
	return s.replace(ctx, config.AttendanceCollection, docs)
}

func (s *Seeder) seedLeaves(ctx context.Context) (int, error) {
	now := time.Now()
	docs := []interface{}{
		models.Leave{
			ID: primitive.NewObjectID(), EmployeeID: "EMP-001", EmployeeName: "Aarav Sharma",
			LeaveType: "sickLeave", StartDate: now.AddDate(0, 0, -14).Format("2006-01-02"),
			EndDate: now.AddDate(0, 0, -13).Format("2006-01-02"), Days: 2,
			Reason: "Fever", Status: "approved", ApprovedBy: "HR",
			ApprovedDate: now.AddDate(0, 0, -15).Format(time.RFC3339),
			CreatedAt:    now.AddDate(0, 0, -16).Format(time.RFC3339),
			UpdatedAt:    now.AddDate(0, 0, -15).Format(time.RFC3339),
		},
		models.Leave{
			ID: primitive.NewObjectID(), EmployeeID: "EMP-002", EmployeeName: "Priya Patel",
			LeaveType: "casualLeave", StartDate: now.AddDate(0, 0, 7).Format("2006-01-02"),
			EndDate: now.AddDate(0, 0, 9).Format("2006-01-02"), Days: 3,
			Reason: "Family function", Status: "pending",
			CreatedAt: now.Format(time.RFC3339),
			UpdatedAt: now.Format(time.RFC3339),
		},
	}
	return s.replace(ctx, config.LeaveCollection, docs)
}
