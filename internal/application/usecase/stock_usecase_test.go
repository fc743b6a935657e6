package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/usecase"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubLotRepo struct{ ids map[string]bool }

func (r *stubLotRepo) Create(*entity.Lot) error { return nil }
func (r *stubLotRepo) GetByID(id string) (*entity.Lot, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Lot{ID: id}, nil
}
func (r *stubLotRepo) Update(*entity.Lot) error             { return nil }
func (r *stubLotRepo) List(int, int) ([]*entity.Lot, error) { return nil, nil }
func (r *stubLotRepo) ListByExpiryDate(time.Time, int, int) ([]*entity.Lot, error) {
	return nil, nil
}
func (r *stubLotRepo) ListByArticle(string, int, int) ([]*entity.Lot, error) { return nil, nil }
func (r *stubLotRepo) Delete(string) error                                   { return nil }

type stubWarehouseRepo struct{ ids map[string]bool }

func (r *stubWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *stubWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Warehouse{ID: id}, nil
}
func (r *stubWarehouseRepo) Update(*entity.Warehouse) error             { return nil }
func (r *stubWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }
func (r *stubWarehouseRepo) SearchByLocation(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *stubWarehouseRepo) Delete(string) error { return nil }

type memStockRepo struct {
	byID   map[string]*entity.Stock
	byPair map[string]*entity.Stock
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{byID: map[string]*entity.Stock{}, byPair: map[string]*entity.Stock{}}
}

func (r *memStockRepo) Create(s *entity.Stock) error {
	cp := *s
	r.byID[s.ID] = &cp
	r.byPair[s.LotID+"|"+s.WarehouseID] = &cp
	return nil
}

func (r *memStockRepo) GetByID(id string) (*entity.Stock, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStockRepo) GetByLotAndWarehouse(lotID, warehouseID string) (*entity.Stock, error) {
	s, ok := r.byPair[lotID+"|"+warehouseID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(lotID, warehouseID string) (*entity.Stock, error) {
	return r.GetByLotAndWarehouse(lotID, warehouseID)
}

func (r *memStockRepo) Update(s *entity.Stock) error {
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *memStockRepo) UpdateQuantity(id string, quantity int64) error {
	r.byID[id].Quantity = quantity
	return nil
}

func (r *memStockRepo) List(int, int) ([]*entity.Stock, error)               { return nil, nil }
func (r *memStockRepo) ListByLot(string, int, int) ([]*entity.Stock, error)  { return nil, nil }
func (r *memStockRepo) ListByWarehouse(string, int, int) ([]*entity.Stock, error) {
	return nil, nil
}

func (r *memStockRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func newStockUC() (*usecase.StockUseCase, *memStockRepo) {
	stocks := newMemStockRepo()
	lots := &stubLotRepo{ids: map[string]bool{"lot-a": true}}
	warehouses := &stubWarehouseRepo{ids: map[string]bool{"wh-1": true}}
	return usecase.NewStockUseCase(stocks, lots, warehouses), stocks
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStockCreate_OK(t *testing.T) {
	uc, _ := newStockUC()

	out, err := uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(10), out.Quantity)
}

// Una línea por par (lote, almacén): la segunda creación se rechaza.
func TestStockCreate_ParDuplicado_Rechaza(t *testing.T) {
	uc, _ := newStockUC()

	_, err := uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: 10})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStockCreate_CantidadNegativa_Rechaza(t *testing.T) {
	uc, _ := newStockUC()
	_, err := uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockCreate_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newStockUC()

	_, err := uc.Create(dto.CreateStockRequest{LotID: "lot-x", WarehouseID: "wh-1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-x", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El ID del cuerpo, si viene, debe coincidir con el de la ruta.
func TestStockUpdate_IDInconsistente_Rechaza(t *testing.T) {
	uc, _ := newStockUC()
	out, err := uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: 10})
	require.NoError(t, err)

	_, err = uc.Update(out.ID, dto.UpdateStockRequest{ID: "otro-id", LotID: "lot-a", WarehouseID: "wh-1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update valida las referencias igual que Create: una referencia rota no
// debe llegar a la base como violación de FK.
func TestStockUpdate_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newStockUC()
	out, err := uc.Create(dto.CreateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: 10})
	require.NoError(t, err)

	_, err = uc.Update(out.ID, dto.UpdateStockRequest{LotID: "lot-x", WarehouseID: "wh-1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(out.ID, dto.UpdateStockRequest{LotID: "lot-a", WarehouseID: "wh-x", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(out.ID, dto.UpdateStockRequest{LotID: "", WarehouseID: "wh-1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockUpdate_Inexistente_Retorna404(t *testing.T) {
	uc, _ := newStockUC()
	_, err := uc.Update("no-existe", dto.UpdateStockRequest{LotID: "lot-a", WarehouseID: "wh-1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockDelete_Inexistente_Retorna404(t *testing.T) {
	uc, _ := newStockUC()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc, _ := newStockUC()
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "el handler traduce nil a 404")
}
