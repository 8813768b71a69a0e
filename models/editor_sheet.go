package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EditorSheet struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID   primitive.ObjectID `json:"employeeId" bson:"employeeId,omitempty"`
	Title        string             `json:"title" bson:"title,omitempty"`
	SheetName    string             `json:"sheetName" bson:"sheetName,omitempty"`
	Link         string             `json:"link" bson:"link,omitempty"`
	Content      string             `json:"content,omitempty" bson:"content,omitempty"`
	Author       string             `json:"author" bson:"author,omitempty"`
	LastModified time.Time          `json:"lastModified" bson:"lastModified,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type EditorSheetWithEmployee struct {
	EditorSheet  `bson:",inline"`
	EmployeeName string `json:"employeeName" bson:"employeeName"`
}

type EditorSheetCreatePayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Title      string `json:"title" validate:"required,min=2,max=200"`
	SheetName  string `json:"sheetName"`
	Link       string `json:"link" validate:"omitempty,url"`
	Content    string `json:"content"`
	Author     string `json:"author"`
}

type EditorSheetUpdatePayload struct {
	Title     string `json:"title,omitempty"`
	SheetName string `json:"sheetName,omitempty"`
	Link      string `json:"link,omitempty" validate:"omitempty,url"`
	Content   string `json:"content,omitempty"`
	Author    string `json:"author,omitempty"`
}
