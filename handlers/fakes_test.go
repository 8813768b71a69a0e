package handlers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"office-management-backend/models"
	"office-management-backend/repository"
)

// In-memory repository fakes backing the fiber app.Test round trips.

type fakeUserRepo struct {
	users       map[string]*models.User // keyed by email
	lastCreated *models.User
	statsResult *models.EmployeeStats
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	if _, taken := f.users[user.Email]; taken {
		return nil, repository.ErrEmailTaken
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	f.lastCreated = user
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	all := []models.User{}
	for _, user := range f.users {
		all = append(all, *user)
	}
	return all, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	for _, user := range f.users {
		if user.ID == id {
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for email, user := range f.users {
		if user.ID == id {
			delete(f.users, email)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeUserRepo) Stats(ctx context.Context) (*models.EmployeeStats, error) {
	if f.statsResult != nil {
		return f.statsResult, nil
	}
	return &models.EmployeeStats{TotalEmployees: int64(len(f.users))}, nil
}

type fakeLeaveRepo struct {
	leaves map[primitive.ObjectID]*models.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: map[primitive.ObjectID]*models.Leave{}}
}

func (f *fakeLeaveRepo) FindAll(ctx context.Context, filter models.LeaveFilter) ([]models.Leave, error) {
	all := []models.Leave{}
	for _, leave := range f.leaves {
		if filter.Status != "" && leave.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != "" && leave.EmployeeID != filter.EmployeeID {
			continue
		}
		all = append(all, *leave)
	}
	return all, nil
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	leave, ok := f.leaves[id]
	if !ok {
		return nil, nil
	}
	copied := *leave
	return &copied, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	leave.ID = primitive.NewObjectID()
	f.leaves[leave.ID] = leave
	return &mongo.InsertOneResult{InsertedID: leave.ID}, nil
}

func (f *fakeLeaveRepo) Decide(ctx context.Context, id primitive.ObjectID, status, approvedBy string) (*models.Leave, error) {
	leave, ok := f.leaves[id]
	if !ok {
		return nil, repository.ErrLeaveNotFound
	}
	if leave.Status != "pending" {
		return nil, repository.ErrLeaveAlreadyDecided
	}
	leave.Status = status
	leave.ApprovedBy = approvedBy
	copied := *leave
	return &copied, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := f.leaves[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.leaves, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeBalanceRepo struct {
	balances map[string]*models.LeaveBalance // keyed by employeeID
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: map[string]*models.LeaveBalance{}}
}

func (f *fakeBalanceRepo) FindOrCreate(ctx context.Context, employeeID string, year int) (*models.LeaveBalance, error) {
	if balance, ok := f.balances[employeeID]; ok {
		copied := *balance
		return &copied, nil
	}
	balance := &models.LeaveBalance{
		EmployeeID:  employeeID,
		Year:        year,
		SickLeave:   models.LeaveBucket{Total: 10, Remaining: 10},
		CasualLeave: models.LeaveBucket{Total: 12, Remaining: 12},
		PaidLeave:   models.LeaveBucket{Total: 20, Remaining: 20},
	}
	f.balances[employeeID] = balance
	copied := *balance
	return &copied, nil
}

func (f *fakeBalanceRepo) ApplyUsage(ctx context.Context, employeeID string, year int, leaveType string, daysUsed int) (*models.LeaveBalance, error) {
	balance, ok := f.balances[employeeID]
	if !ok {
		return nil, repository.ErrBalanceNotFound
	}
	var bucket *models.LeaveBucket
	switch models.NormalizeLeaveType(leaveType) {
	case "sickLeave":
		bucket = &balance.SickLeave
	case "casualLeave":
		bucket = &balance.CasualLeave
	case "paidLeave":
		bucket = &balance.PaidLeave
	default:
		return nil, errors.New("unknown leave type")
	}
	bucket.Used += daysUsed
	bucket.Remaining -= daysUsed
	copied := *balance
	return &copied, nil
}

func (f *fakeBalanceRepo) FindAllForYear(ctx context.Context, year int) ([]models.LeaveBalance, error) {
	all := []models.LeaveBalance{}
	for _, balance := range f.balances {
		if balance.Year == year {
			all = append(all, *balance)
		}
	}
	return all, nil
}

type fakeAttendanceRepo struct {
	records  map[primitive.ObjectID]*models.AttendanceRecord
	activeQR *models.QRCode
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[primitive.ObjectID]*models.AttendanceRecord{}}
}

func (f *fakeAttendanceRepo) FindPage(ctx context.Context, limit, skip int64) (*models.AttendancePage, error) {
	all, _ := f.FindAll(ctx)
	return &models.AttendancePage{
		Data:  all,
		Total: int64(len(all)),
		Limit: limit,
		Skip:  skip,
	}, nil
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	all := []models.AttendanceRecord{}
	for _, record := range f.records {
		all = append(all, *record)
	}
	return all, nil
}

func (f *fakeAttendanceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AttendanceRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeAttendanceRepo) FindByEmployeeName(ctx context.Context, employeeName string) ([]models.AttendanceRecord, error) {
	all := []models.AttendanceRecord{}
	for _, record := range f.records {
		if record.EmployeeName == employeeName {
			all = append(all, *record)
		}
	}
	return all, nil
}

func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.AttendanceRecord, error) {
	for _, record := range f.records {
		if record.EmployeeID == employeeID && record.Date == date {
			copied := *record
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record *models.AttendanceRecord) (*mongo.InsertOneResult, error) {
	record.ID = primitive.NewObjectID()
	f.records[record.ID] = record
	return &mongo.InsertOneResult{InsertedID: record.ID}, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	record, ok := f.records[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if status, ok := updateData["status"].(string); ok {
		record.Status = status
	}
	if checkOut, ok := updateData["checkOutTime"].(time.Time); ok {
		record.CheckOutTime = &checkOut
	}
	if totalHours, ok := updateData["totalHours"].(float64); ok {
		record.TotalHours = totalHours
	}
	if hours, ok := updateData["hours"].(string); ok {
		record.Hours = hours
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := f.records[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.records, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeAttendanceRepo) CreateQRCode(ctx context.Context, code *models.QRCode) (*mongo.InsertOneResult, error) {
	code.ID = primitive.NewObjectID()
	f.activeQR = code
	return &mongo.InsertOneResult{InsertedID: code.ID}, nil
}

func (f *fakeAttendanceRepo) FindActiveQRCode(ctx context.Context, date string) (*models.QRCode, error) {
	if f.activeQR == nil || f.activeQR.Date != date {
		return nil, nil
	}
	copied := *f.activeQR
	return &copied, nil
}
