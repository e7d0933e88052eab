package postgres

import (
	"testing"

	"github.com/mvalencia/inventario-textil/internal/domain/repository"
	"github.com/stretchr/testify/assert"
)

// El orden de la búsqueda combinada depende de los filtros activos: buscar
// solo por tela lista agrupado por talla, buscar solo por talla agrupado por
// tela; el resto ordena por nombre. min_quantity no altera la elección.
func TestSearchOrder_SegunFiltrosActivos(t *testing.T) {
	min := int64(5)

	assert.Equal(t, "size, name", searchOrder(repository.ProductFilter{FabricType: "algodón"}))
	assert.Equal(t, "size, name", searchOrder(repository.ProductFilter{FabricType: "algodón", MinQuantity: &min}))

	assert.Equal(t, "fabric_type, name", searchOrder(repository.ProductFilter{Size: "M"}))
	assert.Equal(t, "fabric_type, name", searchOrder(repository.ProductFilter{Size: "M", MinQuantity: &min}))

	assert.Equal(t, "name", searchOrder(repository.ProductFilter{FabricType: "algodón", Size: "M"}))
	assert.Equal(t, "name", searchOrder(repository.ProductFilter{MinQuantity: &min}))
	assert.Equal(t, "name", searchOrder(repository.ProductFilter{}))
}
