package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskAssignee struct {
	Name   string `json:"name" bson:"name,omitempty"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

type Task struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title,omitempty"`
	Description string             `json:"description" bson:"description,omitempty"`
	Priority    string             `json:"priority" bson:"priority,omitempty"`
	Status      string             `json:"status" bson:"status,omitempty"`
	Assignee    TaskAssignee       `json:"assignee" bson:"assignee,omitempty"`
	DueDate     string             `json:"dueDate" bson:"dueDate,omitempty"`
	Tags        []string           `json:"tags" bson:"tags,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type TaskCreatePayload struct {
	Title       string       `json:"title" validate:"required,min=2,max=200"`
	Description string       `json:"description"`
	Priority    string       `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status      string       `json:"status" validate:"omitempty,oneof=todo inProgress completed"`
	Assignee    TaskAssignee `json:"assignee"`
	DueDate     string       `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Tags        []string     `json:"tags"`
}

type TaskUpdatePayload struct {
	Title       string        `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    string        `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Status      string        `json:"status,omitempty" validate:"omitempty,oneof=todo inProgress completed"`
	Assignee    *TaskAssignee `json:"assignee,omitempty"`
	DueDate     string        `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Tags        []string      `json:"tags,omitempty"`
}
