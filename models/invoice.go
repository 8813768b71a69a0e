package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Invoice struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Company       string             `json:"company" bson:"company,omitempty"`
	CompanyID     string             `json:"companyId,omitempty" bson:"companyId,omitempty"`
	Project       string             `json:"project,omitempty" bson:"project,omitempty"`
	Client        string             `json:"client" bson:"client,omitempty"`
	Amount        float64            `json:"amount" bson:"amount,omitempty"`
	GSTAmount     float64            `json:"gstAmount" bson:"gstAmount,omitempty"`
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount,omitempty"`
	HasGST        bool               `json:"hasGST" bson:"hasGST,omitempty"`
	GSTPercentage float64            `json:"gstPercentage,omitempty" bson:"gstPercentage,omitempty"`
	Status        string             `json:"status" bson:"status,omitempty"`
	DueDate       string             `json:"dueDate" bson:"dueDate,omitempty"`
	IssuedDate    string             `json:"issuedDate,omitempty" bson:"issuedDate,omitempty"`
	ClientImage   string             `json:"clientImage,omitempty" bson:"clientImage,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type InvoiceCreatePayload struct {
	Company       string  `json:"company" validate:"required"`
	CompanyID     string  `json:"companyId"`
	Project       string  `json:"project"`
	Client        string  `json:"client" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,min=0"`
	GSTAmount     float64 `json:"gstAmount" validate:"min=0"`
	TotalAmount   float64 `json:"totalAmount" validate:"min=0"`
	HasGST        bool    `json:"hasGST"`
	GSTPercentage float64 `json:"gstPercentage" validate:"min=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=paid pending overdue"`
	DueDate       string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	IssuedDate    string  `json:"issuedDate" validate:"omitempty,datetime=2006-01-02"`
	ClientImage   string  `json:"clientImage"`
}

type InvoiceUpdatePayload struct {
	Company       string   `json:"company,omitempty"`
	CompanyID     string   `json:"companyId,omitempty"`
	Project       string   `json:"project,omitempty"`
	Client        string   `json:"client,omitempty"`
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	GSTAmount     *float64 `json:"gstAmount,omitempty" validate:"omitempty,min=0"`
	TotalAmount   *float64 `json:"totalAmount,omitempty" validate:"omitempty,min=0"`
	HasGST        *bool    `json:"hasGST,omitempty"`
	GSTPercentage *float64 `json:"gstPercentage,omitempty" validate:"omitempty,min=0"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=paid pending overdue"`
	DueDate       string   `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IssuedDate    string   `json:"issuedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ClientImage   string   `json:"clientImage,omitempty"`
}
