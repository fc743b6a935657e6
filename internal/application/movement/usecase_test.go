package movement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/gestock-api/internal/application/movement"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	mu     sync.Mutex
	byID   map[string]*entity.Stock
	byPair map[string]string // "lot|warehouse" -> stock ID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{byID: map[string]*entity.Stock{}, byPair: map[string]string{}}
}

func pairKey(lotID, warehouseID string) string { return lotID + "|" + warehouseID }

func (r *fakeStockRepo) seed(lotID, warehouseID string, qty int64) *entity.Stock {
	s := &entity.Stock{ID: uuid.New().String(), LotID: lotID, WarehouseID: warehouseID, Quantity: qty}
	r.byID[s.ID] = s
	r.byPair[pairKey(lotID, warehouseID)] = s.ID
	return s
}

func (r *fakeStockRepo) Create(s *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	r.byPair[pairKey(s.LotID, s.WarehouseID)] = s.ID
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStockRepo) GetByLotAndWarehouse(lotID, warehouseID string) (*entity.Stock, error) {
	return r.GetForUpdate(lotID, warehouseID)
}

func (r *fakeStockRepo) GetForUpdate(lotID, warehouseID string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byPair[pairKey(lotID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *fakeStockRepo) Update(s *entity.Stock) error { return nil }

func (r *fakeStockRepo) UpdateQuantity(id string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id].Quantity = quantity
	return nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, error)     { return nil, nil }
func (r *fakeStockRepo) ListByLot(string, int, int) ([]*entity.Stock, error) { return nil, nil }
func (r *fakeStockRepo) ListByWarehouse(string, int, int) ([]*entity.Stock, error) {
	return nil, nil
}
func (r *fakeStockRepo) Delete(id string) error { return nil }

func (r *fakeStockRepo) quantity(t *testing.T, lotID, warehouseID string) int64 {
	t.Helper()
	s, err := r.GetForUpdate(lotID, warehouseID)
	require.NoError(t, err)
	require.NotNil(t, s, "debe existir la línea de stock")
	return s.Quantity
}

type fakeMovementRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{byID: map[string]*entity.StockMovement{}}
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) Update(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) List(int, int) ([]*entity.StockMovement, error) { return nil, nil }
func (r *fakeMovementRepo) ListByLot(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByWarehouse(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByType(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *fakeMovementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

type fakeLotRepo struct {
	ids map[string]bool
}

func (r *fakeLotRepo) Create(*entity.Lot) error { return nil }
func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Lot{ID: id}, nil
}
func (r *fakeLotRepo) Update(*entity.Lot) error             { return nil }
func (r *fakeLotRepo) List(int, int) ([]*entity.Lot, error) { return nil, nil }
func (r *fakeLotRepo) ListByExpiryDate(time.Time, int, int) ([]*entity.Lot, error) {
	return nil, nil
}
func (r *fakeLotRepo) ListByArticle(string, int, int) ([]*entity.Lot, error) { return nil, nil }
func (r *fakeLotRepo) Delete(string) error                                   { return nil }

type fakeWarehouseRepo struct {
	ids map[string]bool
}

func (r *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Warehouse{ID: id}, nil
}
func (r *fakeWarehouseRepo) Update(*entity.Warehouse) error             { return nil }
func (r *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) SearchByLocation(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) Delete(string) error { return nil }

// fakeTxRunner serializa las "transacciones" con un mutex, igual que harían
// los bloqueos de fila en PostgreSQL sobre la misma línea de stock.
type fakeTxRunner struct {
	mu        sync.Mutex
	movRepo   *fakeMovementRepo
	stockRepo *fakeStockRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.movRepo, r.stockRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	lotA       = "lot-a"
	warehouse1 = "wh-1"
	warehouse2 = "wh-2"
)

type fixture struct {
	uc     *movement.UseCase
	movs   *fakeMovementRepo
	stocks *fakeStockRepo
}

func newFixture() *fixture {
	movs := newFakeMovementRepo()
	stocks := newFakeStockRepo()
	tx := &fakeTxRunner{movRepo: movs, stockRepo: stocks}
	lots := &fakeLotRepo{ids: map[string]bool{lotA: true}}
	warehouses := &fakeWarehouseRepo{ids: map[string]bool{warehouse1: true, warehouse2: true}}
	return &fixture{
		uc:     movement.NewUseCase(tx, movs, lots, warehouses),
		movs:   movs,
		stocks: stocks,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y reconciliación libro-stock
// ──────────────────────────────────────────────────────────────────────────────

// Secuencia: 100 inicial, IN 20 → 120, OUT 50 → 70, borrar el IN → 50.
func TestRegister_SecuenciaInOutDelete(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 100)
	ctx := context.Background()

	in, err := f.uc.Register(ctx, movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 20, LotID: lotA, DestinationWarehouseID: warehouse1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), f.stocks.quantity(t, lotA, warehouse1))

	_, err = f.uc.Register(ctx, movement.MovementInput{
		Type: entity.MovementTypeOUT, Quantity: 50, LotID: lotA, SourceWarehouseID: warehouse1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(70), f.stocks.quantity(t, lotA, warehouse1))

	// Eliminar el IN revierte su efecto aunque deja pasar el neto actual.
	require.NoError(t, f.uc.Delete(ctx, in.ID))
	assert.Equal(t, int64(50), f.stocks.quantity(t, lotA, warehouse1))
	assert.Equal(t, 1, f.movs.count(), "solo debe quedar el OUT en el libro")
}

func TestRegister_Transfer_AjustaAmbosAlmacenes(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 30)
	f.stocks.seed(lotA, warehouse2, 5)

	_, err := f.uc.Register(context.Background(), movement.MovementInput{
		Type:                   entity.MovementTypeTRANSFER,
		Quantity:               10,
		LotID:                  lotA,
		SourceWarehouseID:      warehouse1,
		DestinationWarehouseID: warehouse2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), f.stocks.quantity(t, lotA, warehouse1))
	assert.Equal(t, int64(15), f.stocks.quantity(t, lotA, warehouse2))
}

// Si la línea de stock no existe, el movimiento se rechaza y nada persiste.
func TestRegister_LineaInexistente_RechazaSinPersistir(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Register(context.Background(), movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 10, LotID: lotA, DestinationWarehouseID: warehouse1,
	})
	require.ErrorIs(t, err, domain.ErrStockLineNotFound)
	assert.Zero(t, f.movs.count(), "el libro no debe registrar el movimiento rechazado")
}

func TestRegister_StockInsuficiente_Rechaza(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 3)

	_, err := f.uc.Register(context.Background(), movement.MovementInput{
		Type: entity.MovementTypeOUT, Quantity: 5, LotID: lotA, SourceWarehouseID: warehouse1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), f.stocks.quantity(t, lotA, warehouse1), "la cantidad no debe cambiar")
	assert.Zero(t, f.movs.count())
}

func TestRegister_Validacion(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 10)
	ctx := context.Background()

	cases := []struct {
		name  string
		input movement.MovementInput
	}{
		{"cantidad cero", movement.MovementInput{Type: entity.MovementTypeIN, Quantity: 0, LotID: lotA, DestinationWarehouseID: warehouse1}},
		{"cantidad negativa", movement.MovementInput{Type: entity.MovementTypeIN, Quantity: -5, LotID: lotA, DestinationWarehouseID: warehouse1}},
		{"tipo desconocido", movement.MovementInput{Type: "AJUSTE", Quantity: 1, LotID: lotA, DestinationWarehouseID: warehouse1}},
		{"IN sin destino", movement.MovementInput{Type: entity.MovementTypeIN, Quantity: 1, LotID: lotA}},
		{"IN con origen", movement.MovementInput{Type: entity.MovementTypeIN, Quantity: 1, LotID: lotA, SourceWarehouseID: warehouse1, DestinationWarehouseID: warehouse2}},
		{"OUT sin origen", movement.MovementInput{Type: entity.MovementTypeOUT, Quantity: 1, LotID: lotA}},
		{"TRANSFER mismo almacén", movement.MovementInput{Type: entity.MovementTypeTRANSFER, Quantity: 1, LotID: lotA, SourceWarehouseID: warehouse1, DestinationWarehouseID: warehouse1}},
		{"sin lote", movement.MovementInput{Type: entity.MovementTypeIN, Quantity: 1, DestinationWarehouseID: warehouse1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Register(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_LoteInexistente_Retorna404(t *testing.T) {
	f := newFixture()
	f.stocks.seed("otro-lote", warehouse1, 10)

	_, err := f.uc.Register(context.Background(), movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 1, LotID: "otro-lote", DestinationWarehouseID: warehouse1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: revertir + aplicar en una sola transacción
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReviertaYAplique(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 100)
	ctx := context.Background()

	mov, err := f.uc.Register(ctx, movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 20, LotID: lotA, DestinationWarehouseID: warehouse1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(120), f.stocks.quantity(t, lotA, warehouse1))

	// 20 → 35: el neto pasa de +20 a +35.
	updated, err := f.uc.Update(ctx, mov.ID, movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 35, LotID: lotA, DestinationWarehouseID: warehouse1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(135), f.stocks.quantity(t, lotA, warehouse1))
	assert.Equal(t, mov.ID, updated.ID, "el ID del movimiento se conserva")
	assert.Equal(t, mov.CreatedBy, updated.CreatedBy)
}

func TestUpdate_CambioDeTipo_INaOUT(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 100)
	ctx := context.Background()

	mov, err := f.uc.Register(ctx, movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 20, LotID: lotA, DestinationWarehouseID: warehouse1,
	})
	require.NoError(t, err)

	// IN 20 → OUT 10: 120 - 20 - 10 = 90.
	_, err = f.uc.Update(ctx, mov.ID, movement.MovementInput{
		Type: entity.MovementTypeOUT, Quantity: 10, LotID: lotA, SourceWarehouseID: warehouse1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(90), f.stocks.quantity(t, lotA, warehouse1))
}

func TestUpdate_MovimientoInexistente(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 10)

	_, err := f.uc.Update(context.Background(), "no-existe", movement.MovementInput{
		Type: entity.MovementTypeIN, Quantity: 1, LotID: lotA, DestinationWarehouseID: warehouse1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_MovimientoInexistente(t *testing.T) {
	f := newFixture()
	err := f.uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar un OUT devuelve la cantidad al almacén aunque el resultado
// intermedio no se valide contra el suelo (es una corrección del libro).
func TestDelete_ReviertaOUT(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 50)
	ctx := context.Background()

	mov, err := f.uc.Register(ctx, movement.MovementInput{
		Type: entity.MovementTypeOUT, Quantity: 30, LotID: lotA, SourceWarehouseID: warehouse1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(20), f.stocks.quantity(t, lotA, warehouse1))

	require.NoError(t, f.uc.Delete(ctx, mov.ID))
	assert.Equal(t, int64(50), f.stocks.quantity(t, lotA, warehouse1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos movimientos simultáneos sobre la misma línea
// ──────────────────────────────────────────────────────────────────────────────

// Desde 10, un IN de 5 y un OUT de 3 concurrentes deben dejar exactamente 12,
// sin importar el orden de ejecución.
func TestRegister_Concurrente_SinPerdidaDeActualizaciones(t *testing.T) {
	f := newFixture()
	f.stocks.seed(lotA, warehouse1, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.uc.Register(ctx, movement.MovementInput{
			Type: entity.MovementTypeIN, Quantity: 5, LotID: lotA, DestinationWarehouseID: warehouse1,
		})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.uc.Register(ctx, movement.MovementInput{
			Type: entity.MovementTypeOUT, Quantity: 3, LotID: lotA, SourceWarehouseID: warehouse1,
		})
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int64(12), f.stocks.quantity(t, lotA, warehouse1))
	assert.Equal(t, 2, f.movs.count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListByType_TipoInvalido(t *testing.T) {
	f := newFixture()
	_, err := f.uc.ListByType(context.Background(), "WHATEVER", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
