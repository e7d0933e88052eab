package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/application/inventory"
	"github.com/mvalencia/inventario-textil/internal/domain"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/pkg/metrics"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de stock: el
// único camino de escritura sobre la cantidad de un producto.
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Increase POST /api/inventory/increase. El motor acepta cualquier entero;
// la validación amount > 0 vive aquí, como en las UIs del sistema.
func (h *InventoryHandler) Increase(c *fiber.Ctx) error {
	var in dto.StockDeltaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser positivo"})
	}
	if err := h.uc.Increase(c.Context(), in.ProductID, in.Amount, in.Actor); err != nil {
		return mapStockError(c, err)
	}
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementKindINCREASE).Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "stock aumentado"})
}

// Decrease POST /api/inventory/decrease. Stock insuficiente responde 409 y
// no cambia nada.
func (h *InventoryHandler) Decrease(c *fiber.Ctx) error {
	var in dto.StockDeltaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser positivo"})
	}
	if err := h.uc.Decrease(c.Context(), in.ProductID, in.Amount, in.Actor); err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.InsufficientStockTotal.Inc()
		}
		return mapStockError(c, err)
	}
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementKindDECREASE).Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "stock reducido"})
}

// Adjust POST /api/inventory/adjust: fija la cantidad directamente.
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Adjust(c.Context(), in.ProductID, in.NewQuantity, in.Actor); err != nil {
		return mapStockError(c, err)
	}
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementKindADJUST).Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "stock ajustado"})
}

// History GET /api/inventory/movements?product_id=&limit=. Más recientes
// primero; sin product_id devuelve el historial global.
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id debe ser un entero"})
		}
		productID = &id
	}
	out, err := h.uc.History(productID, c.QueryInt("limit", inventory.DefaultHistoryLimit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// mapStockError traduce los errores del motor de stock a status HTTP.
func mapStockError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
