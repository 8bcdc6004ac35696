package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// EmployeeHandler handles HTTP requests for the employees of a store.
type EmployeeHandler struct {
	service  *services.EmployeeService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, validate: validator.New(), log: logger}
}

// RegisterRoutes registers the employee routes under /stores/:storeId.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router) {
	employeeRoutes := router.Group("/stores/:storeId/employees")
	employeeRoutes.Get("/", h.HandleGetEmployees)
	employeeRoutes.Post("/", h.HandleCreateEmployee)
}

// HandleGetEmployees lists the employees of a store.
func (h *EmployeeHandler) HandleGetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetEmployees(currentUserID(c), models.ID(c.Params("storeId")))
	if err != nil {
		return serviceError(c, h.log, err, "Could not retrieve employees")
	}
	return c.JSON(employees)
}

// HandleCreateEmployee creates an employee. The response never carries the password.
func (h *EmployeeHandler) HandleCreateEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(employee); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateEmployee(currentUserID(c), models.ID(c.Params("storeId")), &employee); err != nil {
		return serviceError(c, h.log, err, "Could not create employee")
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}
