package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DailyTask struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID     primitive.ObjectID `json:"employeeId" bson:"employeeId,omitempty"`
	Date           string             `json:"date" bson:"date,omitempty"`
	Project        string             `json:"project" bson:"project,omitempty"`
	WorkingTime    string             `json:"workingTime" bson:"workingTime,omitempty"`
	TaskDone       string             `json:"taskDone" bson:"taskDone,omitempty"`
	ResearchDone   string             `json:"researchDone,omitempty" bson:"researchDone,omitempty"`
	ApprovalStatus string             `json:"approvalStatus" bson:"approvalStatus,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// DailyTaskWithEmployee is the list shape after the $lookup against users;
// EmployeeName is null in JSON when the join found nobody.
type DailyTaskWithEmployee struct {
	DailyTask    `bson:",inline"`
	EmployeeName *string `json:"employeeName" bson:"employeeName"`
}

type DailyTaskCreatePayload struct {
	EmployeeID     string `json:"employeeId" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Project        string `json:"project"`
	WorkingTime    string `json:"workingTime"`
	TaskDone       string `json:"taskDone" validate:"required"`
	ResearchDone   string `json:"researchDone"`
	ApprovalStatus string `json:"approvalStatus" validate:"omitempty,oneof=pending approved rejected"`
}

type DailyTaskUpdatePayload struct {
	Date           string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Project        string  `json:"project,omitempty"`
	WorkingTime    string  `json:"workingTime,omitempty"`
	TaskDone       *string `json:"taskDone,omitempty"`
	ResearchDone   *string `json:"researchDone,omitempty"`
	ApprovalStatus string  `json:"approvalStatus,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}
