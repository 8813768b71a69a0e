package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Leave struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId,omitempty"`
	EmployeeName string             `json:"employeeName" bson:"employeeName,omitempty"`
	LeaveType    string             `json:"leaveType" bson:"leaveType,omitempty"`
	StartDate    string             `json:"startDate" bson:"startDate,omitempty"`
	EndDate      string             `json:"endDate" bson:"endDate,omitempty"`
	Days         int                `json:"days" bson:"days,omitempty"`
	Reason       string             `json:"reason" bson:"reason,omitempty"`
	Status       string             `json:"status" bson:"status,omitempty"`
	ApprovedBy   string             `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	ApprovedDate string             `json:"approvedDate,omitempty" bson:"approvedDate,omitempty"`
	CreatedAt    string             `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    string             `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type LeaveCreatePayload struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	EmployeeName string `json:"employeeName"`
	LeaveType    string `json:"leaveType" validate:"required,oneof=sickLeave casualLeave paidLeave sick casual paid"`
	StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason       string `json:"reason"`
}

type LeaveDecisionPayload struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	ApprovedBy string `json:"approvedBy"`
}

// LeaveFilter collects the query parameters accepted by GET /api/leaves.
type LeaveFilter struct {
	EmployeeID string
	Status     string
	LeaveType  string
	StartDate  string
	EndDate    string
}
