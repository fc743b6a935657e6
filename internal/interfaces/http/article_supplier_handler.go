package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/usecase"
)

// ArticleSupplierHandler maneja los vínculos artículo-proveedor (protegido).
type ArticleSupplierHandler struct {
	uc *usecase.ArticleSupplierUseCase
}

// NewArticleSupplierHandler construye el handler.
func NewArticleSupplierHandler(uc *usecase.ArticleSupplierUseCase) *ArticleSupplierHandler {
	return &ArticleSupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vínculo artículo-proveedor
// @Tags         article-suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleSupplierRequest  true  "Datos del vínculo"
// @Success      201   {object}  dto.ArticleSupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/article-suppliers [post]
func (h *ArticleSupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Location", "/api/article-suppliers/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener vínculo por ID
// @Tags         article-suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vínculo"
// @Success      200  {object}  dto.ArticleSupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/article-suppliers/{id} [get]
func (h *ArticleSupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "vínculo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vínculos artículo-proveedor
// @Tags         article-suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ArticleSupplierListResponse
// @Router       /api/article-suppliers [get]
func (h *ArticleSupplierHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar vínculos por artículo y/o proveedor
// @Tags         article-suppliers
// @Security     Bearer
// @Produce      json
// @Param        article_name   query  string  false  "Designación del artículo (match parcial)"
// @Param        supplier_name  query  string  false  "Nombre del proveedor (match parcial)"
// @Success      200  {object}  dto.ArticleSupplierListResponse
// @Router       /api/article-suppliers/search [get]
func (h *ArticleSupplierHandler) Search(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.Search(c.Query("article_name"), c.Query("supplier_name"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vínculo artículo-proveedor
// @Tags         article-suppliers
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del vínculo"
// @Param        body  body  dto.UpdateArticleSupplierRequest  true  "Datos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/article-suppliers/{id} [put]
func (h *ArticleSupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if _, err := h.uc.Update(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar vínculo artículo-proveedor
// @Tags         article-suppliers
// @Security     Bearer
// @Param        id   path  string  true  "ID del vínculo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/article-suppliers/{id} [delete]
func (h *ArticleSupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
