package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/develop-free/server-site/internal/errors"
	"github.com/develop-free/server-site/internal/records/domain"
)

func newMockRepo(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock), mock
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	departmentID := "d1"
	student := &domain.Student{
		ID:           "s1",
		UserID:       "u1",
		FirstName:    "Anna",
		LastName:     "Petrova",
		DepartmentID: &departmentID,
		Email:        "anna@x.com",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("INSERT INTO students").
			WithArgs(student.ID, student.UserID, student.FirstName, student.LastName,
				student.MiddleName, student.BirthDate, student.GroupID, student.DepartmentID,
				student.Email, student.AvatarPath, student.CreatedAt, student.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.CreateStudent(ctx, student))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("INSERT INTO students").
			WithArgs(student.ID, student.UserID, student.FirstName, student.LastName,
				student.MiddleName, student.BirthDate, student.GroupID, student.DepartmentID,
				student.Email, student.AvatarPath, student.CreatedAt, student.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := repo.CreateStudent(ctx, student)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestGetStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()
		departmentID := "d1"
		rows := pgxmock.NewRows([]string{
			"id", "user_id", "first_name", "last_name", "middle_name",
			"birth_date", "group_id", "department_id", "email", "avatar_path", "created_at", "updated_at",
		}).AddRow("s1", "u1", "Anna", "Petrova", "", (*time.Time)(nil), (*string)(nil),
			&departmentID, "anna@x.com", "", now, now)

		mock.ExpectQuery("SELECT (.+) FROM students WHERE id").
			WithArgs("s1").
			WillReturnRows(rows)

		student, err := repo.GetStudent(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, student)
		assert.Equal(t, "Anna", student.FirstName)
		assert.Nil(t, student.GroupID)
		require.NotNil(t, student.DepartmentID)
		assert.Equal(t, "d1", *student.DepartmentID)
	})

	t.Run("absent row is not an error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM students WHERE id").
			WithArgs("missing").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		student, err := repo.GetStudent(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, student)
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	student := &domain.Student{ID: "missing", FirstName: "Anna", LastName: "Petrova", Email: "anna@x.com"}
	mock.ExpectExec("UPDATE students").
		WithArgs(student.ID, student.FirstName, student.LastName, student.MiddleName,
			student.BirthDate, student.GroupID, student.DepartmentID, student.Email, student.AvatarPath).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.UpdateStudent(ctx, student), apperr.ErrNotFound)
}

func TestListGroupsByDepartment(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	departmentID := "d1"
	rows := pgxmock.NewRows([]string{"id", "name", "department_id", "created_at"}).
		AddRow("g1", "KT-21", &departmentID, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM groups").
		WithArgs("d1").
		WillReturnRows(rows)

	groups, err := repo.ListGroupsByDepartment(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "KT-21", groups[0].Name)
	require.NotNil(t, groups[0].DepartmentID)
	assert.Equal(t, "d1", *groups[0].DepartmentID)
}

func TestTeacherLifecycle(t *testing.T) {
	ctx := context.Background()

	teacher := &domain.Teacher{
		ID:        "t1",
		UserID:    "u1",
		LastName:  "Ivanov",
		FirstName: "Pyotr",
		Position:  "lecturer",
		Email:     "ivanov@x.com",
		IsTeacher: true,
	}

	t.Run("create commits account and profile together", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").
			WithArgs(teacher.UserID, "teacher_abc123", teacher.Email, "hash", "teacher").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO teachers").
			WithArgs(teacher.ID, teacher.UserID, teacher.LastName, teacher.FirstName,
				teacher.MiddleName, teacher.Position).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.CreateTeacher(ctx, teacher, "teacher_abc123", "hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken email rolls back and conflicts", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").
			WithArgs(teacher.UserID, "teacher_abc123", teacher.Email, "hash", "teacher").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateTeacher(ctx, teacher, "teacher_abc123", "hash")
		assert.ErrorIs(t, err, apperr.ErrDuplicateIdentity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update rewrites profile and account", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE teachers").
			WithArgs(teacher.ID, teacher.LastName, teacher.FirstName, teacher.MiddleName, teacher.Position).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE users").
			WithArgs(teacher.ID, teacher.Email, "teacher").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpdateTeacher(ctx, teacher))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update of unknown profile rolls back", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE teachers").
			WithArgs(teacher.ID, teacher.LastName, teacher.FirstName, teacher.MiddleName, teacher.Position).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.UpdateTeacher(ctx, teacher), apperr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete removes the linked user", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("DELETE FROM users").
			WithArgs("t1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteTeacher(ctx, "t1"))
	})

	t.Run("delete of unknown teacher", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("DELETE FROM users").
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteTeacher(ctx, "missing"), apperr.ErrNotFound)
	})
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	when := time.Now().Add(24 * time.Hour)

	event := &domain.Event{
		ID:         "e1",
		IconType:   "contest",
		Title:      "Science Fair",
		DateTime:   when,
		StudentIDs: []string{"s1", "s2"},
	}

	t.Run("commits the event with its full roster", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO events").
			WithArgs(event.ID, event.IconType, event.Title, event.DateTime, event.TeacherID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO event_students").
			WithArgs("e1", "s1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO event_students").
			WithArgs("e1", "s2").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.CreateEvent(ctx, event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("participant failure rolls everything back", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO events").
			WithArgs(event.ID, event.IconType, event.Title, event.DateTime, event.TeacherID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO event_students").
			WithArgs("e1", "s1").
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.CreateEvent(ctx, event), apperr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	event := &domain.Event{ID: "e1", IconType: "contest", Title: "Science Fair", DateTime: time.Now(), StudentIDs: []string{"s1"}}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE events").
		WithArgs(event.ID, event.IconType, event.Title, event.DateTime, event.TeacherID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM event_students").
		WithArgs("e1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("INSERT INTO event_students").
		WithArgs("e1", "s1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.UpdateEvent(ctx, event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentsExist(t *testing.T) {
	ctx := context.Background()

	t.Run("empty list trivially exists", func(t *testing.T) {
		repo, _ := newMockRepo(t)
		ok, err := repo.StudentsExist(ctx, nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("all resolved", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT count").
			WithArgs([]string{"s1", "s2"}).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		ok, err := repo.StudentsExist(ctx, []string{"s1", "s2"})
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("one missing", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT count").
			WithArgs([]string{"s1", "s2"}).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		ok, err := repo.StudentsExist(ctx, []string{"s1", "s2"})
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	when := time.Now()
	rows := pgxmock.NewRows([]string{"id", "icon_type", "title", "date_time", "teacher_id", "coalesce"}).
		AddRow("e1", "contest", "Science Fair", when, (*string)(nil), []string{"s1", "s2"}).
		AddRow("e2", "lecture", "Open Day", when, (*string)(nil), []string{})

	mock.ExpectQuery("SELECT e.id, e.icon_type").WillReturnRows(rows)

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, []string{"s1", "s2"}, events[0].StudentIDs)
	assert.Empty(t, events[1].StudentIDs)
}

func TestDeleteAward(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM awards").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.DeleteAward(ctx, "missing"), apperr.ErrNotFound)
}

func TestErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery("SELECT (.+) FROM groups").WillReturnError(dbErr)

	_, err := repo.ListGroups(ctx)
	assert.ErrorIs(t, err, dbErr)
}
