package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles HTTP requests for the products of a store.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{service: service, validate: validator.New(), log: logger}
}

// RegisterRoutes registers the product routes under /stores/:storeId.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/stores/:storeId/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists the products of a store.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(currentUserID(c), models.ID(c.Params("storeId")))
	if err != nil {
		return serviceError(c, h.log, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a product in a store.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateProduct(currentUserID(c), models.ID(c.Params("storeId")), &product); err != nil {
		return serviceError(c, h.log, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces a product and returns the stored record.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}
	updated, err := h.service.UpdateProduct(
		currentUserID(c), models.ID(c.Params("storeId")), models.ID(c.Params("id")), &product)
	if err != nil {
		return serviceError(c, h.log, err, "Could not update product")
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes a product. Success has no body.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	err := h.service.DeleteProduct(currentUserID(c), models.ID(c.Params("storeId")), models.ID(c.Params("id")))
	if err != nil {
		return serviceError(c, h.log, err, "Could not delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
