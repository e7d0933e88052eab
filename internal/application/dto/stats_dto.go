package dto

import "github.com/mvalencia/inventario-textil/internal/domain/entity"

// StatsResponse estadísticas generales del inventario.
type StatsResponse struct {
	TotalProducts   int64 `json:"total_products"`
	TotalUnits      int64 `json:"total_units"`
	FabricTypeCount int64 `json:"fabric_type_count"`
	SizeCount       int64 `json:"size_count"`
	OutOfStock      int64 `json:"out_of_stock"`
}

// FabricTypeSummaryResponse total de unidades por tipo de tela.
type FabricTypeSummaryResponse struct {
	FabricType string `json:"fabric_type"`
	TotalUnits int64  `json:"total_units"`
}

// SizeSummaryResponse total de unidades por talla.
type SizeSummaryResponse struct {
	Size       string `json:"size"`
	TotalUnits int64  `json:"total_units"`
}

// BackupResponse resultado de un respaldo.
type BackupResponse struct {
	Path string `json:"path"`
}

// FromStats mapea las estadísticas a su respuesta.
func FromStats(s *entity.InventoryStats) StatsResponse {
	return StatsResponse{
		TotalProducts:   s.TotalProducts,
		TotalUnits:      s.TotalUnits,
		FabricTypeCount: s.FabricTypeCount,
		SizeCount:       s.SizeCount,
		OutOfStock:      s.OutOfStock,
	}
}
