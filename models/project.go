package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectTaskCounts struct {
	Total     int `json:"total" bson:"total"`
	Completed int `json:"completed" bson:"completed"`
}

type Project struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name,omitempty"`
	Description string             `json:"description" bson:"description,omitempty"`
	Progress    int                `json:"progress" bson:"progress,omitempty"`
	Status      string             `json:"status" bson:"status,omitempty"`
	Priority    string             `json:"priority" bson:"priority,omitempty"`
	Deadline    string             `json:"deadline" bson:"deadline,omitempty"`
	Team        []string           `json:"team" bson:"team,omitempty"`
	Tasks       ProjectTaskCounts  `json:"tasks" bson:"tasks,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type ProjectCreatePayload struct {
	Name        string            `json:"name" validate:"required,min=2,max=200"`
	Description string            `json:"description"`
	Progress    int               `json:"progress" validate:"min=0,max=100"`
	Status      string            `json:"status"`
	Priority    string            `json:"priority" validate:"omitempty,oneof=high medium low"`
	Deadline    string            `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Team        []string          `json:"team"`
	Tasks       ProjectTaskCounts `json:"tasks"`
}

type ProjectUpdatePayload struct {
	Name        string             `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Progress    *int               `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	Status      string             `json:"status,omitempty"`
	Priority    string             `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Deadline    string             `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Team        []string           `json:"team,omitempty"`
	Tasks       *ProjectTaskCounts `json:"tasks,omitempty"`
}
