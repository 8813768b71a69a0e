package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceRecord keeps both TotalHours (numeric) and Hours (display string
// like "8h 15m"); legacy records may carry only one of the two, so the report
// code falls back from one to the other.
type AttendanceRecord struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId,omitempty"`
	EmployeeName string             `json:"employeeName" bson:"employeeName,omitempty"`
	Department   string             `json:"department,omitempty" bson:"department,omitempty"`
	Date         string             `json:"date" bson:"date,omitempty"`
	CheckInTime  *time.Time         `json:"checkInTime,omitempty" bson:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `json:"checkOutTime,omitempty" bson:"checkOutTime,omitempty"`
	Status       string             `json:"status" bson:"status,omitempty"`
	TotalHours   float64            `json:"totalHours,omitempty" bson:"totalHours,omitempty"`
	Hours        string             `json:"hours,omitempty" bson:"hours,omitempty"`
	Location     string             `json:"location,omitempty" bson:"location,omitempty"`
	Photo        string             `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type AttendanceCreatePayload struct {
	EmployeeID   string     `json:"employeeId" validate:"required"`
	EmployeeName string     `json:"employeeName" validate:"required"`
	Department   string     `json:"department"`
	Date         string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CheckInTime  *time.Time `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	Status       string     `json:"status"`
	TotalHours   float64    `json:"totalHours" validate:"min=0"`
	Hours        string     `json:"hours"`
	Location     string     `json:"location"`
	Photo        string     `json:"photo"`
}

type AttendanceUpdatePayload struct {
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       string     `json:"status,omitempty"`
	TotalHours   *float64   `json:"totalHours,omitempty" validate:"omitempty,min=0"`
	Hours        string     `json:"hours,omitempty"`
	Location     string     `json:"location,omitempty"`
	Photo        string     `json:"photo,omitempty"`
}

type CheckInPayload struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	EmployeeName string `json:"employeeName" validate:"required"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Photo        string `json:"photo"`
	QRCode       string `json:"qrCode"`
}

type CheckOutPayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

// AttendancePage is the paginated list response for GET /api/attendance.
type AttendancePage struct {
	Data  []AttendanceRecord `json:"data"`
	Total int64              `json:"total"`
	Limit int64              `json:"limit"`
	Skip  int64              `json:"skip"`
}

// QRCode is a dated kiosk code employees scan to check in.
type QRCode struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code,omitempty"`
	Date      string             `json:"date" bson:"date,omitempty"`
	ExpiresAt time.Time          `json:"expiresAt" bson:"expiresAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
}
