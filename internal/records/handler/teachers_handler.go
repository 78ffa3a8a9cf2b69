package handler

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/develop-free/server-site/internal/records/domain"
	"github.com/develop-free/server-site/internal/records/dto"
)

func (h *RecordsHandler) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.repo.ListTeachers(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(teachers)
}

// CreateTeacher provisions the login/password pair for the new account and
// returns it once in the response; mail delivery of credentials is out of
// scope, so the admin hands them over.
func (h *RecordsHandler) CreateTeacher(c *fiber.Ctx) error {
	var input dto.TeacherInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return errorResponse(c, err)
	}

	login, password, err := generateCredentials()
	if err != nil {
		return errorResponse(c, err)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(c, err)
	}

	teacher := teacherFromInput(input)
	teacher.ID = uuid.New().String()
	teacher.UserID = uuid.New().String()

	if err := h.repo.CreateTeacher(c.UserContext(), teacher, login, string(hashedPassword)); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"teacher": teacher,
		"credentials": fiber.Map{
			"login":    login,
			"password": password,
		},
	})
}

func (h *RecordsHandler) UpdateTeacher(c *fiber.Ctx) error {
	var input dto.TeacherInput
	if err := h.parseAndValidate(c, &input); err != nil {
		return errorResponse(c, err)
	}

	teacher := teacherFromInput(input)
	teacher.ID = c.Params("id")

	if err := h.repo.UpdateTeacher(c.UserContext(), teacher); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(teacher)
}

func (h *RecordsHandler) DeleteTeacher(c *fiber.Ctx) error {
	if err := h.repo.DeleteTeacher(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func teacherFromInput(input dto.TeacherInput) *domain.Teacher {
	return &domain.Teacher{
		LastName:   input.LastName,
		FirstName:  input.FirstName,
		MiddleName: input.MiddleName,
		Position:   input.Position,
		Email:      input.Email,
		IsTeacher:  input.IsTeacher,
	}
}

// generateCredentials produces a teacher_xxxxxx login and a 12-character
// random password.
func generateCredentials() (login, password string, err error) {
	buf := make([]byte, 12)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	login = "teacher_" + hex.EncodeToString(buf[:3])
	password = base64.RawURLEncoding.EncodeToString(buf[3:])
	return login, password, nil
}
