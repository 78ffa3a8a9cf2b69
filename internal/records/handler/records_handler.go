package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperr "github.com/develop-free/server-site/internal/errors"
	"github.com/develop-free/server-site/internal/records/domain"
	"github.com/develop-free/server-site/internal/records/dto"
)

type RecordsHandler struct {
	repo      domain.Repository
	validator *validator.Validate
}

func NewRecordsHandler(repo domain.Repository) *RecordsHandler {
	return &RecordsHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperr.ErrDuplicateIdentity):
		status = fiber.StatusConflict
		message = err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperr.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func (h *RecordsHandler) parseAndValidate(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return apperr.ErrValidation
	}
	if err := h.validator.Struct(input); err != nil {
		return apperr.ErrValidation
	}
	return nil
}

func (h *RecordsHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.repo.ListDepartments(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(departments)
}

func (h *RecordsHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.repo.ListGroups(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(groups)
}

// ListGroupsByDepartment narrows the group list to one department, backing
// the cascading department -> group pickers on student forms.
func (h *RecordsHandler) ListGroupsByDepartment(c *fiber.Ctx) error {
	groups, err := h.repo.ListGroupsByDepartment(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(groups)
}

func (h *RecordsHandler) CreateGroup(c *fiber.Ctx) error {
	var input dto.GroupInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return errorResponse(c, err)
	}

	group := &domain.Group{
		ID:           uuid.New().String(),
		Name:         input.Name,
		DepartmentID: &input.DepartmentID,
		CreatedAt:    time.Now(),
	}
	if err := h.repo.CreateGroup(c.UserContext(), group); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (h *RecordsHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.repo.ListStudents(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(students)
}

func (h *RecordsHandler) GetStudent(c *fiber.Ctx) error {
	student, err := h.repo.GetStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if student == nil {
		return errorResponse(c, apperr.ErrNotFound)
	}
	return c.JSON(student)
}

func (h *RecordsHandler) CreateStudent(c *fiber.Ctx) error {
	var input dto.StudentInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return errorResponse(c, err)
	}

	now := time.Now()
	student := &domain.Student{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		BirthDate:    input.BirthDate,
		GroupID:      input.GroupID,
		DepartmentID: &input.DepartmentID,
		Email:        input.Email,
		AvatarPath:   input.AvatarPath,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.repo.CreateStudent(c.UserContext(), student); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *RecordsHandler) UpdateStudent(c *fiber.Ctx) error {
	var input dto.StudentUpdateInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return errorResponse(c, err)
	}

	student := &domain.Student{
		ID:           c.Params("id"),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		BirthDate:    input.BirthDate,
		GroupID:      input.GroupID,
		DepartmentID: &input.DepartmentID,
		Email:        input.Email,
		AvatarPath:   input.AvatarPath,
	}
	if err := h.repo.UpdateStudent(c.UserContext(), student); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(student)
}

func (h *RecordsHandler) DeleteStudent(c *fiber.Ctx) error {
	if err := h.repo.DeleteStudent(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *RecordsHandler) ListAwardTypes(c *fiber.Ctx) error {
	types, err := h.repo.ListAwardTypes(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(types)
}

func (h *RecordsHandler) ListAwardDegrees(c *fiber.Ctx) error {
	degrees, err := h.repo.ListAwardDegrees(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(degrees)
}

func (h *RecordsHandler) ListAwards(c *fiber.Ctx) error {
	awards, err := h.repo.ListAwards(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(awards)
}

func (h *RecordsHandler) CreateAward(c *fiber.Ctx) error {
	var input dto.AwardInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return errorResponse(c, err)
	}

	award := &domain.Award{
		ID:        uuid.New().String(),
		StudentID: input.StudentID,
		EventName: input.EventName,
		TypeID:    input.TypeID,
		DegreeID:  input.DegreeID,
		FilePath:  input.FilePath,
		CreatedAt: time.Now(),
	}
	if err := h.repo.CreateAward(c.UserContext(), award); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(award)
}

func (h *RecordsHandler) DeleteAward(c *fiber.Ctx) error {
	if err := h.repo.DeleteAward(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *RecordsHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.repo.ListEvents(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(events)
}

func (h *RecordsHandler) CreateEvent(c *fiber.Ctx) error {
	event, err := h.eventFromBody(c)
	if err != nil {
		return errorResponse(c, err)
	}
	event.ID = uuid.New().String()

	if err := h.repo.CreateEvent(c.UserContext(), event); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *RecordsHandler) UpdateEvent(c *fiber.Ctx) error {
	event, err := h.eventFromBody(c)
	if err != nil {
		return errorResponse(c, err)
	}
	event.ID = c.Params("id")

	if err := h.repo.UpdateEvent(c.UserContext(), event); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(event)
}

// eventFromBody parses, validates and verifies every referenced participant
// before any write happens.
func (h *RecordsHandler) eventFromBody(c *fiber.Ctx) (*domain.Event, error) {
	var input dto.EventInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return nil, err
	}

	ok, err := h.repo.StudentsExist(c.UserContext(), input.Students)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	return &domain.Event{
		IconType:   input.IconType,
		Title:      input.Title,
		DateTime:   input.DateTime,
		TeacherID:  input.TeacherID,
		StudentIDs: input.Students,
	}, nil
}

func (h *RecordsHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.repo.DeleteEvent(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
