package dto

import "time"

type GroupInput struct {
	Name         string `json:"name" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
}

type StudentInput struct {
	UserID       string     `json:"user_id" validate:"required,uuid"`
	FirstName    string     `json:"first_name" validate:"required"`
	LastName     string     `json:"last_name" validate:"required"`
	MiddleName   string     `json:"middle_name"`
	BirthDate    *time.Time `json:"birth_date"`
	GroupID      *string    `json:"group_id" validate:"omitempty,uuid"`
	DepartmentID string     `json:"department_id" validate:"required,uuid"`
	Email        string     `json:"email" validate:"required,email"`
	AvatarPath   string     `json:"avatar_path"`
}

// StudentUpdateInput omits user_id: the 1:1 user link is fixed at creation
// and never rewritten by an update.
type StudentUpdateInput struct {
	FirstName    string     `json:"first_name" validate:"required"`
	LastName     string     `json:"last_name" validate:"required"`
	MiddleName   string     `json:"middle_name"`
	BirthDate    *time.Time `json:"birth_date"`
	GroupID      *string    `json:"group_id" validate:"omitempty,uuid"`
	DepartmentID string     `json:"department_id" validate:"required,uuid"`
	Email        string     `json:"email" validate:"required,email"`
	AvatarPath   string     `json:"avatar_path"`
}

type TeacherInput struct {
	LastName   string `json:"last_name" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	Position   string `json:"position" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	IsTeacher  bool   `json:"is_teacher"`
}

type AwardInput struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	EventName string `json:"event_name" validate:"required"`
	TypeID    int    `json:"type_id" validate:"required"`
	DegreeID  int    `json:"degree_id" validate:"required"`
	FilePath  string `json:"file_path" validate:"required"`
}

type EventInput struct {
	IconType  string    `json:"icon_type" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	DateTime  time.Time `json:"date_time" validate:"required"`
	TeacherID *string   `json:"teacher_id" validate:"omitempty,uuid"`
	Students  []string  `json:"students" validate:"dive,uuid"`
}
