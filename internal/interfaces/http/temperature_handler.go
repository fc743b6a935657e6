package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/usecase"
)

// TemperatureHandler maneja el histórico de mediciones de temperatura (protegido).
type TemperatureHandler struct {
	uc *usecase.TemperatureUseCase
}

// NewTemperatureHandler construye el handler.
func NewTemperatureHandler(uc *usecase.TemperatureUseCase) *TemperatureHandler {
	return &TemperatureHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar medición de temperatura
// @Tags         temperatures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTemperatureReadingRequest  true  "Datos de la medición"
// @Success      201   {object}  dto.TemperatureReadingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/temperatures [post]
func (h *TemperatureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemperatureReadingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Location", "/api/temperatures/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener medición por ID
// @Tags         temperatures
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la medición"
// @Success      200  {object}  dto.TemperatureReadingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/temperatures/{id} [get]
func (h *TemperatureHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "medición no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar mediciones
// @Tags         temperatures
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TemperatureReadingListResponse
// @Router       /api/temperatures [get]
func (h *TemperatureHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBySensor godoc
// @Summary      Listar mediciones de un sensor
// @Tags         temperatures
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del sensor"
// @Success      200  {object}  dto.TemperatureReadingListResponse
// @Router       /api/temperatures/by-sensor/{id} [get]
func (h *TemperatureHandler) ListBySensor(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.ListBySensor(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange godoc
// @Summary      Listar mediciones en un rango de fechas
// @Tags         temperatures
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Inicio (RFC 3339 o YYYY-MM-DD)"
// @Param        end    query  string  true  "Fin (RFC 3339 o YYYY-MM-DD)"
// @Success      200    {object}  dto.TemperatureReadingListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/temperatures/by-date-range [get]
func (h *TemperatureHandler) ListByDateRange(c *fiber.Ctx) error {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		return badRequest(c, "VALIDATION", "start inválida, usar RFC 3339 o YYYY-MM-DD")
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		return badRequest(c, "VALIDATION", "end inválida, usar RFC 3339 o YYYY-MM-DD")
	}
	page := parsePage(c)
	out, err := h.uc.ListByDateRange(start, end, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar medición
// @Tags         temperatures
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la medición"
// @Param        body  body  dto.UpdateTemperatureReadingRequest  true  "Datos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/temperatures/{id} [put]
func (h *TemperatureHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTemperatureReadingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if _, err := h.uc.Update(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar medición
// @Tags         temperatures
// @Security     Bearer
// @Param        id   path  string  true  "ID de la medición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/temperatures/{id} [delete]
func (h *TemperatureHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
