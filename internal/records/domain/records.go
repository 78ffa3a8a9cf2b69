package domain

import "time"

type Department struct {
	ID   string
	Name string
}

type Group struct {
	ID           string
	Name         string
	DepartmentID *string
	CreatedAt    time.Time
}

// Student is the profile attached 1:1 to a user account.
type Student struct {
	ID           string
	UserID       string
	FirstName    string
	LastName     string
	MiddleName   string
	BirthDate    *time.Time
	GroupID      *string
	DepartmentID *string
	Email        string
	AvatarPath   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Teacher is the staff profile linked 1:1 to a user account. Email and
// IsTeacher mirror the linked user row (role "teacher" vs plain "user").
type Teacher struct {
	ID         string
	UserID     string
	LastName   string
	FirstName  string
	MiddleName string
	Position   string
	Email      string
	IsTeacher  bool
}

type AwardType struct {
	ID   int
	Name string
}

type AwardDegree struct {
	ID   int
	Name string
}

type Award struct {
	ID        string
	StudentID string
	EventName string
	TypeID    int
	DegreeID  int
	FilePath  string
	CreatedAt time.Time
}

type Event struct {
	ID         string
	IconType   string
	Title      string
	DateTime   time.Time
	TeacherID  *string
	StudentIDs []string
}
