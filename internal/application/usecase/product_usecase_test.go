package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/application/usecase"
	"github.com/mvalencia/inventario-textil/internal/domain"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del CRUD de productos sobre repositorios en memoria. El punto
// delicado es el alta: producto y movimiento ADD nacen en la misma
// transacción, y un alta rechazada no persiste ninguno de los dos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products       map[int64]*entity.Product
	movements      []*entity.StockMovement
	nextProductID  int64
	nextMovementID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[int64]*entity.Product), nextProductID: 1, nextMovementID: 1}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.s.nextProductID
	r.s.nextProductID++
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) List(orderBy string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if orderBy == "name" {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	*stored = *p
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id int64, quantity int64, updatedAt time.Time) error {
	if stored, ok := r.s.products[id]; ok {
		stored.Quantity = quantity
		stored.UpdatedAt = updatedAt
	}
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) Search(filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if filter.FabricType != "" && p.FabricType != filter.FabricType {
			continue
		}
		if filter.Size != "" && p.Size != filter.Size {
			continue
		}
		if filter.MinQuantity != nil && p.Quantity < *filter.MinQuantity {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) LowStock(threshold int64) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if p.Quantity <= threshold {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.s.nextMovementID
	r.s.nextMovementID++
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64, limit int) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0)
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.movements[i].ProductID == productID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0)
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.s.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) DeleteByProduct(productID int64) error {
	kept := r.s.movements[:0]
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	return fn(&fakeProductRepo{s: t.s}, &fakeMovementRepo{s: t.s})
}

func newProductFixture() (*fakeStore, *usecase.ProductUseCase) {
	store := newFakeStore()
	uc := usecase.NewProductUseCase(&fakeProductRepo{s: store}, &fakeTxRunner{s: store})
	return store, uc
}

// ── alta ──────────────────────────────────────────────────────────────────────

func TestCreate_NormalizaYRegistraAlta(t *testing.T) {
	store, uc := newProductFixture()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "  Camisa Casual ",
		FabricType: "Algodón",
		Size:       "m",
		Quantity:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Camisa Casual", out.Name, "el nombre se guarda sin espacios extremos")
	assert.Equal(t, "algodón", out.FabricType, "tipo de tela en minúsculas, tildes intactas")
	assert.Equal(t, "M", out.Size, "talla en mayúsculas")
	assert.Equal(t, entity.DefaultColor, out.Color, "sin color declarado cae en N/A")
	assert.Equal(t, int64(10), out.Quantity)
	assert.NotZero(t, out.ID)

	// El alta deja su movimiento: before == after == cantidad inicial.
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementKindADD, mov.Kind)
	assert.Equal(t, out.ID, mov.ProductID)
	assert.Equal(t, int64(10), mov.Delta)
	assert.Equal(t, int64(10), mov.QuantityBefore)
	assert.Equal(t, int64(10), mov.QuantityAfter)
	assert.Equal(t, entity.DefaultActor, mov.Actor)
}

func TestCreate_NombreVacioNoPersisteNada(t *testing.T) {
	store, uc := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "   ",
		FabricType: "algodón",
		Size:       "M",
		Quantity:   5,
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Empty(t, store.products, "un alta rechazada no deja producto")
	assert.Empty(t, store.movements, "un alta rechazada no deja historial")
}

func TestCreate_CantidadNegativaRechazada(t *testing.T) {
	store, uc := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Camisa",
		FabricType: "algodón",
		Size:       "M",
		Quantity:   -1,
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Empty(t, store.products)
}

func TestCreate_CantidadCeroValida(t *testing.T) {
	store, uc := newProductFixture()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Bufanda",
		FabricType: "lana",
		Size:       "U",
		Quantity:   0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantity)
	require.Len(t, store.movements, 1)
	assert.Equal(t, int64(0), store.movements[0].Delta)
}

// ── lectura y actualización ───────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	_, uc := newProductFixture()
	out, err := uc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out, "inexistente devuelve nil sin error; el handler lo traduce a 404")
}

func TestUpdate_CamposEnBlancoConservanValor(t *testing.T) {
	store, uc := newProductFixture()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Camisa", FabricType: "algodón", Size: "M", Quantity: 10, Color: "Azul",
	})
	require.NoError(t, err)

	newName := "Camisa Formal"
	blank := "   "
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:       &newName,
		FabricType: &blank, // en blanco: conserva algodón
	})
	require.NoError(t, err)

	assert.Equal(t, "Camisa Formal", out.Name)
	assert.Equal(t, "algodón", out.FabricType)
	assert.Equal(t, "M", out.Size)
	assert.Equal(t, "Azul", out.Color)
	assert.Equal(t, int64(10), out.Quantity, "Update jamás toca la cantidad")
	assert.Equal(t, int64(10), store.products[created.ID].Quantity)
}

func TestUpdate_NormalizaTelaYTalla(t *testing.T) {
	_, uc := newProductFixture()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Camisa", FabricType: "algodón", Size: "M", Quantity: 1,
	})
	require.NoError(t, err)

	fabric := "POLIÉSTER"
	size := "xl"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{FabricType: &fabric, Size: &size})
	require.NoError(t, err)
	assert.Equal(t, "poliéster", out.FabricType)
	assert.Equal(t, "XL", out.Size)
}

func TestUpdate_Inexistente(t *testing.T) {
	_, uc := newProductFixture()
	name := "X"
	out, err := uc.Update(42, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ── eliminación ───────────────────────────────────────────────────────────────

func TestDelete_EliminaProductoYSuHistorial(t *testing.T) {
	store, uc := newProductFixture()
	ctx := context.Background()
	camisa, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Camisa", FabricType: "algodón", Size: "M", Quantity: 10})
	require.NoError(t, err)
	falda, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Falda", FabricType: "lino", Size: "S", Quantity: 5})
	require.NoError(t, err)
	require.Len(t, store.movements, 2)

	require.NoError(t, uc.Delete(ctx, camisa.ID))

	assert.NotContains(t, store.products, camisa.ID)
	assert.Contains(t, store.products, falda.ID)
	require.Len(t, store.movements, 1, "la cascada no deja movimientos huérfanos")
	assert.Equal(t, falda.ID, store.movements[0].ProductID)
}

func TestDelete_Inexistente(t *testing.T) {
	_, uc := newProductFixture()
	err := uc.Delete(context.Background(), 42)
	assert.Equal(t, domain.ErrNotFound, err)
}

// ── búsqueda y bajo stock ─────────────────────────────────────────────────────

func TestSearch_FiltrosCombinadosCaseInsensitive(t *testing.T) {
	_, uc := newProductFixture()
	ctx := context.Background()
	seed := []dto.CreateProductRequest{
		{Name: "Camisa", FabricType: "Algodón", Size: "M", Quantity: 10},
		{Name: "Pantalón", FabricType: "algodón", Size: "L", Quantity: 2},
		{Name: "Vestido", FabricType: "Seda", Size: "M", Quantity: 7},
	}
	for _, in := range seed {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	// La consulta llega en mayúsculas; el almacenamiento está normalizado.
	out, err := uc.Search(dto.SearchProductsRequest{FabricType: "ALGODÓN"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	min := int64(5)
	out, err = uc.Search(dto.SearchProductsRequest{FabricType: "algodón", MinQuantity: &min})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Camisa", out.Items[0].Name)

	out, err = uc.Search(dto.SearchProductsRequest{Size: "m"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}

func TestSearch_SinCoincidenciasListaVacia(t *testing.T) {
	_, uc := newProductFixture()
	out, err := uc.Search(dto.SearchProductsRequest{FabricType: "cuero"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Items, "lista vacía, nunca null en el JSON")
}

func TestLowStock_UmbralInclusivo(t *testing.T) {
	_, uc := newProductFixture()
	ctx := context.Background()
	seed := []dto.CreateProductRequest{
		{Name: "Camisa", FabricType: "algodón", Size: "M", Quantity: 10},
		{Name: "Pantalón", FabricType: "algodón", Size: "L", Quantity: 2},
		{Name: "Vestido", FabricType: "seda", Size: "M", Quantity: 25},
	}
	for _, in := range seed {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.LowStock(10)
	require.NoError(t, err)
	require.Equal(t, 2, out.Total, "el umbral es inclusivo: quantity <= 10")
	assert.Equal(t, "Pantalón", out.Items[0].Name, "los más bajos primero")
}
