package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/usecase"
)

// SensorHandler maneja las peticiones HTTP para Sensor (protegido).
type SensorHandler struct {
	uc *usecase.SensorUseCase
}

// NewSensorHandler construye el handler.
func NewSensorHandler(uc *usecase.SensorUseCase) *SensorHandler {
	return &SensorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sensor
// @Tags         sensors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSensorRequest  true  "Datos del sensor"
// @Success      201   {object}  dto.SensorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sensors [post]
func (h *SensorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSensorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Location", "/api/sensors/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener sensor por ID
// @Tags         sensors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del sensor"
// @Success      200  {object}  dto.SensorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sensors/{id} [get]
func (h *SensorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "sensor no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sensores
// @Tags         sensors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SensorListResponse
// @Router       /api/sensors [get]
func (h *SensorHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouseLocation godoc
// @Summary      Listar sensores por localización del almacén
// @Tags         sensors
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  true  "Localización del almacén (match parcial)"
// @Success      200       {object}  dto.SensorListResponse
// @Router       /api/sensors/by-warehouse-location [get]
func (h *SensorHandler) ListByWarehouseLocation(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return badRequest(c, "VALIDATION", "location es requerida")
	}
	page := parsePage(c)
	out, err := h.uc.ListByWarehouseLocation(location, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sensor
// @Tags         sensors
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del sensor"
// @Param        body  body  dto.UpdateSensorRequest  true  "Datos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sensors/{id} [put]
func (h *SensorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSensorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if _, err := h.uc.Update(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar sensor
// @Tags         sensors
// @Security     Bearer
// @Param        id   path  string  true  "ID del sensor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sensors/{id} [delete]
func (h *SensorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
