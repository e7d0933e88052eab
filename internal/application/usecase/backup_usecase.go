package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mvalencia/inventario-textil/internal/application/dto"
)

// Snapshotter puerto hacia el exportador de respaldos de la infraestructura.
// Debe ser seguro de llamar con el store abierto (lectura consistente).
type Snapshotter interface {
	Snapshot(ctx context.Context, destPath string) (string, error)
}

// BackupUseCase crea respaldos del estado durable.
type BackupUseCase struct {
	snap       Snapshotter
	defaultDir string
}

// NewBackupUseCase construye el caso de uso. defaultDir es el directorio para
// respaldos sin ruta explícita.
func NewBackupUseCase(snap Snapshotter, defaultDir string) *BackupUseCase {
	return &BackupUseCase{snap: snap, defaultDir: defaultDir}
}

// Run crea un respaldo en destPath; con ruta vacía genera un nombre con
// timestamp dentro del directorio por defecto.
func (uc *BackupUseCase) Run(ctx context.Context, destPath string) (*dto.BackupResponse, error) {
	destPath = strings.TrimSpace(destPath)
	if destPath == "" {
		name := fmt.Sprintf("respaldo_inventario_%s.json", time.Now().Format("20060102_150405"))
		destPath = filepath.Join(uc.defaultDir, name)
	}
	written, err := uc.snap.Snapshot(ctx, destPath)
	if err != nil {
		return nil, err
	}
	return &dto.BackupResponse{Path: written}, nil
}
