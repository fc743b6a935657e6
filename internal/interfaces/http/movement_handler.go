package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/movement"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

// MovementHandler maneja el libro de movimientos de stock (protegido).
// Registrar, actualizar o eliminar un movimiento ajusta las líneas de stock
// afectadas en la misma transacción.
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  IN suma en destino, OUT resta en origen, TRANSFER resta en origen y suma en destino. Todo en una transacción con bloqueo de fila.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	mov, err := h.uc.Register(c.Context(), movement.MovementInput{
		Type:                   in.Type,
		Quantity:               in.Quantity,
		Date:                   in.Date,
		LotID:                  in.LotID,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		CreatedBy:              GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Location", "/api/movements/"+mov.ID)
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if mov == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	movs, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementList(movs, page.Limit, page.Offset))
}

// ListByLot godoc
// @Summary      Listar movimientos de un lote
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements/by-lot/{id} [get]
func (h *MovementHandler) ListByLot(c *fiber.Ctx) error {
	page := parsePage(c)
	movs, err := h.uc.ListByLot(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementList(movs, page.Limit, page.Offset))
}

// ListByWarehouse godoc
// @Summary      Listar movimientos de un almacén (origen o destino)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements/by-warehouse/{id} [get]
func (h *MovementHandler) ListByWarehouse(c *fiber.Ctx) error {
	page := parsePage(c)
	movs, err := h.uc.ListByWarehouse(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementList(movs, page.Limit, page.Offset))
}

// ListByType godoc
// @Summary      Listar movimientos por tipo (IN, OUT, TRANSFER)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "Tipo de movimiento"
// @Success      200   {object}  dto.MovementListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/by-type/{type} [get]
func (h *MovementHandler) ListByType(c *fiber.Ctx) error {
	page := parsePage(c)
	movs, err := h.uc.ListByType(c.Context(), c.Params("type"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementList(movs, page.Limit, page.Offset))
}

// Update godoc
// @Summary      Actualizar movimiento
// @Description  Revierte el efecto del movimiento anterior y aplica el nuevo, en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Datos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ID != "" && in.ID != id {
		return badRequest(c, "VALIDATION", "el id del cuerpo no coincide con el de la ruta")
	}
	_, err := h.uc.Update(c.Context(), id, movement.MovementInput{
		Type:                   in.Type,
		Quantity:               in.Quantity,
		Date:                   in.Date,
		LotID:                  in.LotID,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		CreatedBy:              GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  Revierte el efecto del movimiento sobre el stock antes de borrarlo.
// @Tags         movements
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                     m.ID,
		Type:                   m.Type,
		Quantity:               m.Quantity,
		Date:                   m.Date,
		LotID:                  m.LotID,
		SourceWarehouseID:      m.SourceWarehouseID,
		DestinationWarehouseID: m.DestinationWarehouseID,
		CreatedAt:              m.CreatedAt,
		CreatedBy:              m.CreatedBy,
	}
}

func toMovementList(movs []*entity.StockMovement, limit, offset int) dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovementResponse(m))
	}
	return dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
