package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/application/usecase"
)

// BackupHandler operación de mantenimiento: snapshot del estado durable.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// backupRequest body opcional para POST /api/maintenance/backup.
type backupRequest struct {
	DestinationPath string `json:"destination_path"`
}

// Create POST /api/maintenance/backup. Sin destination_path usa el
// directorio configurado con nombre por timestamp.
func (h *BackupHandler) Create(c *fiber.Ctx) error {
	var in backupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Run(c.Context(), in.DestinationPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
