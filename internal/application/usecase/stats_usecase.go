package usecase

import (
	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
)

// StatsUseCase consultas de agregación de solo lectura. Funciones puras del
// estado actual del Product Store: sin efectos y sin caché.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// General estadísticas globales del inventario.
func (uc *StatsUseCase) General() (*dto.StatsResponse, error) {
	stats, err := uc.repo.General()
	if err != nil {
		return nil, err
	}
	out := dto.FromStats(stats)
	return &out, nil
}

// ByFabricType resumen de unidades por tipo de tela (mayor total primero).
func (uc *StatsUseCase) ByFabricType() ([]dto.FabricTypeSummaryResponse, error) {
	rows, err := uc.repo.ByFabricType()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FabricTypeSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FabricTypeSummaryResponse{FabricType: r.FabricType, TotalUnits: r.TotalUnits})
	}
	return out, nil
}

// BySize resumen de unidades por talla (orden lexicográfico).
func (uc *StatsUseCase) BySize() ([]dto.SizeSummaryResponse, error) {
	rows, err := uc.repo.BySize()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SizeSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SizeSummaryResponse{Size: r.Size, TotalUnits: r.TotalUnits})
	}
	return out, nil
}
