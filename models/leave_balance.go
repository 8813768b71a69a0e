package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaveBucket struct {
	Total     int `json:"total" bson:"total"`
	Used      int `json:"used" bson:"used"`
	Remaining int `json:"remaining" bson:"remaining"`
}

// LeaveBalance is created lazily on first read for an employee/year pair.
type LeaveBalance struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID  string             `json:"employeeId" bson:"employeeId"`
	Year        int                `json:"year" bson:"year"`
	SickLeave   LeaveBucket        `json:"sickLeave" bson:"sickLeave"`
	CasualLeave LeaveBucket        `json:"casualLeave" bson:"casualLeave"`
	PaidLeave   LeaveBucket        `json:"paidLeave" bson:"paidLeave"`
	CreatedAt   string             `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   string             `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type BalanceUpdatePayload struct {
	LeaveType string `json:"leaveType" validate:"required,oneof=sickLeave casualLeave paidLeave sick casual paid"`
	DaysUsed  int    `json:"daysUsed" validate:"required,min=1"`
}

// NormalizeLeaveType maps the short client forms ("sick") onto the balance
// document field names ("sickLeave").
func NormalizeLeaveType(leaveType string) string {
	switch leaveType {
	case "sick", "casual", "paid":
		return leaveType + "Leave"
	}
	return leaveType
}
