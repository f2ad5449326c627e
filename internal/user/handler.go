package user

import (
	"errors"
	"strconv"
	"strings"

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
	app.All("/api/users", h.dispatch)
	app.All("/api/users/:id<[0-9]+>", h.dispatch)
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
		u, err := h.service.Get(id)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.JSON(u)
	}
	return h.list(c)
}

func (h *Handler) list(c *fiber.Ctx) error {
	result, err := h.service.List(
		FilterFromQuery(c),
		SortFromQuery(c),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) create(c *fiber.Ctx) error {
	fields, ok := request.Fields(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data"})
	}

	created, err := h.service.Create(fields)
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

	updated, err := h.service.Update(id, fields)
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

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "Validation failed",
			"messages": verr.Messages,
		})
	}
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return err
}

// FilterFromQuery reads the optional list filters from the query string.
// The export endpoint shares these parameters with the list endpoint.
func FilterFromQuery(c *fiber.Ctx) Filter {
	var f Filter
	args := c.Context().QueryArgs()

	if args.Has("name") {
		v := c.Query("name")
		f.Name = &v
	}
	if args.Has("phone_number") {
		v := c.Query("phone_number")
		f.PhoneNumber = &v
	}
	if args.Has("address") {
		v := c.Query("address")
		f.Address = &v
	}
	if args.Has("age") {
		n, _ := strconv.Atoi(c.Query("age"))
		f.Age = &n
	}
	if args.Has("education_id") {
		n, _ := strconv.Atoi(c.Query("education_id"))
		f.EducationID = &n
	}

	return f
}

// SortFromQuery reads sort_by and sort_order, defaulting to id ascending.
func SortFromQuery(c *fiber.Ctx) Sort {
	return Sort{
		By:   c.Query("sort_by", "id"),
		Desc: strings.EqualFold(c.Query("sort_order"), "DESC"),
	}
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
