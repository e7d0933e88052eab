package entity

// InventoryStats estadísticas generales del inventario, recalculadas en cada consulta.
type InventoryStats struct {
	TotalProducts   int64
	TotalUnits      int64 // suma de cantidades; 0 si el inventario está vacío
	FabricTypeCount int64 // tipos de tela distintos
	SizeCount       int64 // tallas distintas
	OutOfStock      int64 // productos con cantidad 0
}

// FabricTypeSummary total de unidades por tipo de tela.
type FabricTypeSummary struct {
	FabricType string
	TotalUnits int64
}

// SizeSummary total de unidades por talla.
type SizeSummary struct {
	Size       string
	TotalUnits int64
}
