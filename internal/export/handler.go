package export

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"user-registry-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/export", h.export)
}

func (h *Handler) export(c *fiber.Ctx) error {
	doc, err := h.service.Export(
		c.Query("format"),
		user.FilterFromQuery(c),
		user.SortFromQuery(c),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrFormatRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format parameter is required"})
		case errors.Is(err, ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported format"})
		}
		return err
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Data)
}
