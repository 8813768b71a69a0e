package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User doubles as the employee record; the login endpoint strips Password
// before responding.
type User struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name,omitempty"`
	Email       string             `json:"email" bson:"email,omitempty"`
	Password    string             `json:"password,omitempty" bson:"password,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role        string             `json:"role" bson:"role,omitempty"`
	Department  string             `json:"department" bson:"department,omitempty"`
	Salary      float64            `json:"salary,omitempty" bson:"salary,omitempty"`
	Status      string             `json:"status,omitempty" bson:"status,omitempty"`
	JoiningDate string             `json:"joiningDate,omitempty" bson:"joiningDate,omitempty"`
	Avatar      string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type EmployeeCreatePayload struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Phone       string  `json:"phone"`
	Role        string  `json:"role"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary" validate:"min=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=active on_leave inactive"`
	JoiningDate string  `json:"joiningDate" validate:"omitempty,datetime=2006-01-02"`
	Avatar      string  `json:"avatar"`
}

type EmployeeUpdatePayload struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Password    string   `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role,omitempty"`
	Department  string   `json:"department,omitempty"`
	Salary      *float64 `json:"salary,omitempty" validate:"omitempty,min=0"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active on_leave inactive"`
	JoiningDate string   `json:"joiningDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Avatar      string   `json:"avatar,omitempty"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Role   string             `json:"role"`
}

type DepartmentCount struct {
	Department string `json:"department" bson:"_id"`
	Count      int64  `json:"count" bson:"count"`
}

type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

type EmployeeStats struct {
	TotalEmployees         int64             `json:"totalEmployees"`
	PresentToday           int64             `json:"presentToday"`
	OnLeave                int64             `json:"onLeave"`
	AverageSalary          int64             `json:"averageSalary"`
	DepartmentDistribution []DepartmentCount `json:"departmentDistribution"`
}
