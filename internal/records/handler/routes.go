package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the records endpoints. Reads require any
// authenticated identity; mutations are additionally gated by the staff
// role filter (teacher or admin), and the teacher-account surface by the
// admin filter.
func RegisterRoutes(app *fiber.App, h *RecordsHandler, authenticate, staffOnly, adminOnly fiber.Handler) {
	api := app.Group("/api", authenticate)

	api.Get("/departments", h.ListDepartments)
	api.Get("/departments/:id/groups", h.ListGroupsByDepartment)

	api.Get("/groups", h.ListGroups)
	api.Post("/groups", staffOnly, h.CreateGroup)

	api.Get("/students", h.ListStudents)
	api.Get("/students/:id", h.GetStudent)
	api.Post("/students", staffOnly, h.CreateStudent)
	api.Put("/students/:id", staffOnly, h.UpdateStudent)
	api.Delete("/students/:id", staffOnly, h.DeleteStudent)

	// Teacher accounts carry credentials, so the whole surface is admin-only.
	api.Get("/teachers", adminOnly, h.ListTeachers)
	api.Post("/teachers", adminOnly, h.CreateTeacher)
	api.Put("/teachers/:id", adminOnly, h.UpdateTeacher)
	api.Delete("/teachers/:id", adminOnly, h.DeleteTeacher)

	api.Get("/awards/types", h.ListAwardTypes)
	api.Get("/awards/degrees", h.ListAwardDegrees)
	api.Get("/awards", h.ListAwards)
	api.Post("/awards", staffOnly, h.CreateAward)
	api.Delete("/awards/:id", staffOnly, h.DeleteAward)

	api.Get("/events", h.ListEvents)
	api.Post("/events", staffOnly, h.CreateEvent)
	api.Put("/events/:id", staffOnly, h.UpdateEvent)
	api.Delete("/events/:id", staffOnly, h.DeleteEvent)
}
