package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/application/usecase"
)

// StatsHandler consultas de agregación de solo lectura.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// General GET /api/stats.
func (h *StatsHandler) General(c *fiber.Ctx) error {
	out, err := h.uc.General()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ByFabricType GET /api/stats/fabric-types.
func (h *StatsHandler) ByFabricType(c *fiber.Ctx) error {
	out, err := h.uc.ByFabricType()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": out, "total": len(out)})
}

// BySize GET /api/stats/sizes.
func (h *StatsHandler) BySize(c *fiber.Ctx) error {
	out, err := h.uc.BySize()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": out, "total": len(out)})
}
