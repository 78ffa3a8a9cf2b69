package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_records_repository.go -package=mocks github.com/develop-free/server-site/internal/records/domain Repository

type Repository interface {
	ListDepartments(ctx context.Context) ([]Department, error)

	ListGroups(ctx context.Context) ([]Group, error)
	ListGroupsByDepartment(ctx context.Context, departmentID string) ([]Group, error)
	CreateGroup(ctx context.Context, group *Group) error

	ListStudents(ctx context.Context) ([]Student, error)
	GetStudent(ctx context.Context, id string) (*Student, error)
	CreateStudent(ctx context.Context, student *Student) error
	UpdateStudent(ctx context.Context, student *Student) error
	DeleteStudent(ctx context.Context, id string) error

	ListTeachers(ctx context.Context) ([]Teacher, error)
	// CreateTeacher writes the linked user account and the profile in one
	// transaction; login and passwordHash are the generated credentials.
	CreateTeacher(ctx context.Context, teacher *Teacher, login, passwordHash string) error
	UpdateTeacher(ctx context.Context, teacher *Teacher) error
	DeleteTeacher(ctx context.Context, id string) error

	ListAwardTypes(ctx context.Context) ([]AwardType, error)
	ListAwardDegrees(ctx context.Context) ([]AwardDegree, error)
	ListAwards(ctx context.Context) ([]Award, error)
	CreateAward(ctx context.Context, award *Award) error
	DeleteAward(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) error

	// StudentsExist reports whether every id resolves to a student.
	StudentsExist(ctx context.Context, ids []string) (bool, error)
}
