package movement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// UseCase registra, actualiza y revierte movimientos de stock de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre cada línea
// de stock afectada. La cantidad de una línea es siempre el neto de los
// movimientos vigentes sobre su par (lote, almacén).
type UseCase struct {
	txRunner      TxRunner
	movRepo       repository.StockMovementRepository
	lotRepo       repository.LotRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	lotRepo repository.LotRepository,
	warehouseRepo repository.WarehouseRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		movRepo:       movRepo,
		lotRepo:       lotRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada para registrar o actualizar un movimiento.
// IN: DestinationWarehouseID; OUT: SourceWarehouseID; TRANSFER: ambos,
// distintos. Quantity es una magnitud positiva.
type MovementInput struct {
	Type                   string
	Quantity               int64
	Date                   *time.Time
	LotID                  string
	SourceWarehouseID      string
	DestinationWarehouseID string
	CreatedBy              string
}

// leg representa el efecto de un movimiento sobre un almacén concreto.
type leg struct {
	warehouseID string
	delta       int64
}

// Register valida la entrada, inicia una transacción, bloquea las líneas de
// stock afectadas y persiste el movimiento. Si alguna línea no existe
// devuelve ErrStockLineNotFound y nada queda persistido.
func (uc *UseCase) Register(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		Type:      input.Type,
		Quantity:  input.Quantity,
		Date:      date,
		LotID:     input.LotID,
		CreatedAt: now,
		CreatedBy: input.CreatedBy,
	}
	if input.SourceWarehouseID != "" {
		src := input.SourceWarehouseID
		mov.SourceWarehouseID = &src
	}
	if input.DestinationWarehouseID != "" {
		dst := input.DestinationWarehouseID
		mov.DestinationWarehouseID = &dst
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := applyLegs(stockRepo, mov.LotID, legsOf(mov, +1), true); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Delete revierte el efecto de un movimiento sobre el stock y elimina la
// fila, en una sola transacción. La reversión es incondicional: deshacer una
// entrada es una corrección del libro, no una salida de negocio.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if err := applyLegs(stockRepo, mov.LotID, legsOf(mov, -1), false); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

// Update reemplaza un movimiento por sus nuevos valores: revierte el efecto
// del registro antiguo y aplica el nuevo dentro de la misma transacción,
// de modo que el invariante libro-stock sobrevive a la actualización.
func (uc *UseCase) Update(ctx context.Context, id string, input MovementInput) (*entity.StockMovement, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	var updated *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		old, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := applyLegs(stockRepo, old.LotID, legsOf(old, -1), false); err != nil {
			return err
		}

		date := old.Date
		if input.Date != nil {
			date = *input.Date
		}
		mov := &entity.StockMovement{
			ID:        old.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Date:      date,
			LotID:     input.LotID,
			CreatedAt: old.CreatedAt,
			CreatedBy: old.CreatedBy,
		}
		if input.SourceWarehouseID != "" {
			src := input.SourceWarehouseID
			mov.SourceWarehouseID = &src
		}
		if input.DestinationWarehouseID != "" {
			dst := input.DestinationWarehouseID
			mov.DestinationWarehouseID = &dst
		}

		if err := applyLegs(stockRepo, mov.LotID, legsOf(mov, +1), true); err != nil {
			return err
		}
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		updated = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByID obtiene un movimiento por ID (lectura pura).
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	return uc.movRepo.GetByID(id)
}

// List lista todos los movimientos con paginación.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.List(limit, offset)
}

// ListByLot lista los movimientos de un lote.
func (uc *UseCase) ListByLot(ctx context.Context, lotID string, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByLot(lotID, limit, offset)
}

// ListByWarehouse lista los movimientos cuyo almacén origen o destino coincide.
func (uc *UseCase) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByWarehouse(warehouseID, limit, offset)
}

// ListByType lista los movimientos por tipo (IN, OUT, TRANSFER).
func (uc *UseCase) ListByType(ctx context.Context, movementType string, limit, offset int) ([]*entity.StockMovement, error) {
	switch movementType {
	case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByType(movementType, limit, offset)
}

// validate comprueba tipo, cantidad, campos por tipo y existencia de lote y
// almacenes referenciados.
func (uc *UseCase) validate(input MovementInput) error {
	if input.Quantity <= 0 || input.LotID == "" {
		return domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeIN:
		if input.DestinationWarehouseID == "" || input.SourceWarehouseID != "" {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeOUT:
		if input.SourceWarehouseID == "" || input.DestinationWarehouseID != "" {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if input.SourceWarehouseID == "" || input.DestinationWarehouseID == "" ||
			input.SourceWarehouseID == input.DestinationWarehouseID {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	lot, err := uc.lotRepo.GetByID(input.LotID)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	for _, whID := range []string{input.SourceWarehouseID, input.DestinationWarehouseID} {
		if whID == "" {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(whID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// legsOf devuelve el efecto por almacén de un movimiento, multiplicado por
// sign (+1 aplica, -1 revierte).
func legsOf(m *entity.StockMovement, sign int64) []leg {
	var legs []leg
	if m.SourceWarehouseID != nil {
		legs = append(legs, leg{warehouseID: *m.SourceWarehouseID, delta: -m.Quantity * sign})
	}
	if m.DestinationWarehouseID != nil {
		legs = append(legs, leg{warehouseID: *m.DestinationWarehouseID, delta: m.Quantity * sign})
	}
	return legs
}

// applyLegs bloquea y ajusta cada línea de stock afectada. Las filas se
// bloquean en orden determinista de almacén para evitar interbloqueos entre
// transferencias cruzadas. Con enforceFloor activo, un ajuste que dejaría la
// línea en negativo se rechaza con ErrInsufficientStock.
func applyLegs(stockRepo repository.StockRepository, lotID string, legs []leg, enforceFloor bool) error {
	sort.Slice(legs, func(i, j int) bool { return legs[i].warehouseID < legs[j].warehouseID })

	for _, l := range legs {
		stock, err := stockRepo.GetForUpdate(lotID, l.warehouseID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrStockLineNotFound
		}
		newQty := stock.Quantity + l.delta
		if enforceFloor && newQty < 0 {
			return domain.ErrInsufficientStock
		}
		if err := stockRepo.UpdateQuantity(stock.ID, newQty); err != nil {
			return err
		}
	}
	return nil
}
