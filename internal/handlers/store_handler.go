package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{service: service, validate: validator.New(), log: logger}
}

// RegisterRoutes registers the store routes.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Post("/", h.HandleCreateStore)
}

// HandleGetStores lists the stores of the signed-in user.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(currentUserID(c))
	if err != nil {
		return serviceError(c, h.log, err, "Could not retrieve stores")
	}
	return c.JSON(stores)
}

// HandleCreateStore creates a store owned by the signed-in user.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var store models.Store
	if err := c.BodyParser(&store); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(store); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateStore(currentUserID(c), &store); err != nil {
		return serviceError(c, h.log, err, "Could not create store")
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}
