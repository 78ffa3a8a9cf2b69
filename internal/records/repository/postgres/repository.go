package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperr "github.com/develop-free/server-site/internal/errors"
	"github.com/develop-free/server-site/internal/records/domain"
	"github.com/develop-free/server-site/pkg/constant"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// translateFK maps foreign-key violations to the not-found kind, so a client
// referencing a missing user, group or lookup row gets a 404 instead of a 500.
func translateFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return apperr.ErrNotFound
	}
	return err
}

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperr.ErrDuplicateIdentity
	}
	return err
}

func (r *Repository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *Repository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, department_id, created_at FROM groups ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()
	return scanGroups(rows)
}

func (r *Repository) ListGroupsByDepartment(ctx context.Context, departmentID string) ([]domain.Group, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, department_id, created_at FROM groups
		WHERE department_id = $1 ORDER BY name
	`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by department: %w", err)
	}
	defer rows.Close()
	return scanGroups(rows)
}

func scanGroups(rows pgx.Rows) ([]domain.Group, error) {
	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.DepartmentID, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *Repository) CreateGroup(ctx context.Context, group *domain.Group) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO groups (id, name, department_id, created_at) VALUES ($1, $2, $3, $4)
	`, group.ID, group.Name, group.DepartmentID, group.CreatedAt)
	if err != nil {
		return translateFK(fmt.Errorf("failed to create group: %w", err))
	}
	return nil
}

const studentColumns = `id, user_id, first_name, last_name, middle_name, birth_date, group_id, department_id, email, avatar_path, created_at, updated_at`

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	err := row.Scan(&s.ID, &s.UserID, &s.FirstName, &s.LastName, &s.MiddleName,
		&s.BirthDate, &s.GroupID, &s.DepartmentID, &s.Email, &s.AvatarPath, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+` FROM students ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

func (r *Repository) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+` FROM students WHERE id = $1
	`, id)

	s, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return s, nil
}

func (r *Repository) CreateStudent(ctx context.Context, student *domain.Student) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO students (id, user_id, first_name, last_name, middle_name, birth_date, group_id, department_id, email, avatar_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, student.ID, student.UserID, student.FirstName, student.LastName, student.MiddleName,
		student.BirthDate, student.GroupID, student.DepartmentID, student.Email, student.AvatarPath,
		student.CreatedAt, student.UpdatedAt)
	if err != nil {
		return translateFK(fmt.Errorf("failed to create student: %w", err))
	}
	return nil
}

func (r *Repository) UpdateStudent(ctx context.Context, student *domain.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET first_name = $2, last_name = $3, middle_name = $4, birth_date = $5,
		    group_id = $6, department_id = $7, email = $8, avatar_path = $9, updated_at = now()
		WHERE id = $1
	`, student.ID, student.FirstName, student.LastName, student.MiddleName,
		student.BirthDate, student.GroupID, student.DepartmentID, student.Email, student.AvatarPath)
	if err != nil {
		return translateFK(fmt.Errorf("failed to update student: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteStudent(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Repository) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.user_id, t.last_name, t.first_name, t.middle_name, t.position,
		       u.email, u.role = 'teacher'
		FROM teachers t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.last_name, t.first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	var teachers []domain.Teacher
	for rows.Next() {
		var t domain.Teacher
		if err := rows.Scan(&t.ID, &t.UserID, &t.LastName, &t.FirstName, &t.MiddleName,
			&t.Position, &t.Email, &t.IsTeacher); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func teacherRole(isTeacher bool) string {
	if isTeacher {
		return constant.RoleTeacher
	}
	return constant.RoleUser
}

// CreateTeacher writes the generated user account and the profile row in one
// transaction; a duplicate email surfaces as ErrDuplicateIdentity and nothing
// is persisted.
func (r *Repository) CreateTeacher(ctx context.Context, teacher *domain.Teacher, login, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, login, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`, teacher.UserID, login, teacher.Email, passwordHash, teacherRole(teacher.IsTeacher))
	if err != nil {
		tx.Rollback(ctx)
		return translateUnique(fmt.Errorf("failed to create teacher account: %w", err))
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO teachers (id, user_id, last_name, first_name, middle_name, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, teacher.ID, teacher.UserID, teacher.LastName, teacher.FirstName, teacher.MiddleName, teacher.Position)
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to create teacher profile: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE teachers
		SET last_name = $2, first_name = $3, middle_name = $4, position = $5, updated_at = now()
		WHERE id = $1
	`, teacher.ID, teacher.LastName, teacher.FirstName, teacher.MiddleName, teacher.Position)
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to update teacher profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return apperr.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET email = $2, role = $3
		WHERE id = (SELECT user_id FROM teachers WHERE id = $1)
	`, teacher.ID, teacher.Email, teacherRole(teacher.IsTeacher))
	if err != nil {
		tx.Rollback(ctx)
		return translateUnique(fmt.Errorf("failed to update teacher account: %w", err))
	}

	return tx.Commit(ctx)
}

// DeleteTeacher removes the linked user; the profile and any sessions go with
// it through the cascading foreign keys.
func (r *Repository) DeleteTeacher(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM users WHERE id = (SELECT user_id FROM teachers WHERE id = $1)
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Repository) ListAwardTypes(ctx context.Context) ([]domain.AwardType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM award_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list award types: %w", err)
	}
	defer rows.Close()

	var types []domain.AwardType
	for rows.Next() {
		var t domain.AwardType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *Repository) ListAwardDegrees(ctx context.Context) ([]domain.AwardDegree, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM award_degrees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list award degrees: %w", err)
	}
	defer rows.Close()

	var degrees []domain.AwardDegree
	for rows.Next() {
		var d domain.AwardDegree
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		degrees = append(degrees, d)
	}
	return degrees, rows.Err()
}

func (r *Repository) ListAwards(ctx context.Context) ([]domain.Award, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, event_name, type_id, degree_id, file_path, created_at
		FROM awards ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", err)
	}
	defer rows.Close()

	var awards []domain.Award
	for rows.Next() {
		var a domain.Award
		if err := rows.Scan(&a.ID, &a.StudentID, &a.EventName, &a.TypeID, &a.DegreeID, &a.FilePath, &a.CreatedAt); err != nil {
			return nil, err
		}
		awards = append(awards, a)
	}
	return awards, rows.Err()
}

func (r *Repository) CreateAward(ctx context.Context, award *domain.Award) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO awards (id, student_id, event_name, type_id, degree_id, file_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, award.ID, award.StudentID, award.EventName, award.TypeID, award.DegreeID,
		award.FilePath, award.CreatedAt)
	if err != nil {
		return translateFK(fmt.Errorf("failed to create award: %w", err))
	}
	return nil
}

func (r *Repository) DeleteAward(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM awards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete award: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Repository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.icon_type, e.title, e.date_time, e.teacher_id,
		       COALESCE(array_agg(es.student_id::text) FILTER (WHERE es.student_id IS NOT NULL), '{}')
		FROM events e
		LEFT JOIN event_students es ON es.event_id = e.id
		GROUP BY e.id
		ORDER BY e.date_time
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.IconType, &e.Title, &e.DateTime, &e.TeacherID, &e.StudentIDs); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateEvent writes the event row and its participant links in one
// transaction, so a failure never leaves an event with a partial roster.
func (r *Repository) CreateEvent(ctx context.Context, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO events (id, icon_type, title, date_time, teacher_id)
		VALUES ($1, $2, $3, $4, $5)
	`, event.ID, event.IconType, event.Title, event.DateTime, event.TeacherID)
	if err != nil {
		tx.Rollback(ctx)
		return translateFK(fmt.Errorf("failed to create event: %w", err))
	}

	if err := insertEventStudents(ctx, tx, event.ID, event.StudentIDs); err != nil {
		tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) UpdateEvent(ctx context.Context, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE events SET icon_type = $2, title = $3, date_time = $4, teacher_id = $5
		WHERE id = $1
	`, event.ID, event.IconType, event.Title, event.DateTime, event.TeacherID)
	if err != nil {
		tx.Rollback(ctx)
		return translateFK(fmt.Errorf("failed to update event: %w", err))
	}
	if tag.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return apperr.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM event_students WHERE event_id = $1`, event.ID); err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to reset event participants: %w", err)
	}
	if err := insertEventStudents(ctx, tx, event.ID, event.StudentIDs); err != nil {
		tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

func insertEventStudents(ctx context.Context, tx pgx.Tx, eventID string, studentIDs []string) error {
	for _, studentID := range studentIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO event_students (event_id, student_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, eventID, studentID)
		if err != nil {
			return translateFK(fmt.Errorf("failed to add event participant: %w", err))
		}
	}
	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// StudentsExist count-compares the resolved rows against the requested ids.
func (r *Repository) StudentsExist(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM students WHERE id = ANY($1)
	`, ids).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count students: %w", err)
	}
	return count == len(ids), nil
}
