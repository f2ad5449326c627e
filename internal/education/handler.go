package education

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"user-registry-backend/internal/request"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.All("/api/education", h.dispatch)
	app.All("/api/education/:id<[0-9]+>", h.dispatch)
}

func (h *Handler) dispatch(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet:
		return h.get(c)
	case fiber.MethodPost:
		return h.create(c)
	case fiber.MethodPut:
		return h.update(c)
	case fiber.MethodDelete:
		return h.delete(c)
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
	}
}

func (h *Handler) get(c *fiber.Ctx) error {
	if id, ok := pathOrQueryID(c); ok {
		item, err := h.service.Get(id)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.JSON(item)
	}

	items, err := h.service.List()
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *Handler) create(c *fiber.Ctx) error {
	fields, _ := request.Fields(c)
	name, ok := fields["name"]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	created, err := h.service.Create(name)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) update(c *fiber.Ctx) error {
	fields, _ := request.Fields(c)

	id, ok := pathID(c)
	if !ok {
		if raw, exists := fields["id"]; exists {
			if n, err := strconv.Atoi(raw); err == nil {
				id, ok = n, true
			}
		}
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID is required"})
	}

	var name *string
	if raw, exists := fields["name"]; exists {
		name = &raw
	}

	updated, err := h.service.Update(id, name)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(updated)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, ok := pathOrQueryID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID is required"})
	}

	if err := h.service.Delete(id); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Education deleted successfully"})
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Education not found"})
	case errors.Is(err, ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	return err
}

func pathID(c *fiber.Ctx) (int, bool) {
	if raw := c.Params("id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			return id, true
		}
	}
	return 0, false
}

func pathOrQueryID(c *fiber.Ctx) (int, bool) {
	if id, ok := pathID(c); ok {
		return id, true
	}
	if raw := c.Query("id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			return id, true
		}
	}
	return 0, false
}
