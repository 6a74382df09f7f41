package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/application/sales"
	"github.com/jcastan/inventario-ventas/internal/domain"
)

// SaleHandler maneja la creación, consulta y comprobante PDF de ventas (protegido).
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	queryUC  *sales.QueryUseCase
	pdfUC    *sales.PDFUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, queryUC *sales.QueryUseCase, pdfUC *sales.PDFUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, queryUC: queryUC, pdfUC: pdfUC}
}

// Create crea una venta con sus líneas; POST /api/sales.
// Si alguna línea es inválida responde 422 con todos los errores de campo y el
// banner de faltantes de stock; en ese caso no se persiste nada.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.createUC.CreateSale(c.Context(), GetUsername(c), in)
	if err != nil {
		var vErr *sales.ValidationError
		if errors.As(err, &vErr) {
			msg := vErr.Banner()
			if msg == "" {
				msg = "la venta tiene errores de validación"
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Code: "VENTA_INVALIDA", Message: msg, FieldErrors: vErr.FieldErrors,
			})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: domain.ErrInsufficientStock.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de venta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista ventas filtradas; GET /api/sales?from=&to=&customer=&limit=&offset=.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.SaleListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.queryUC.List(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (formato YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID obtiene una venta con su detalle; GET /api/sales/:id.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// DownloadPDF descarga el comprobante de la venta; GET /api/sales/:id/pdf.
// Si el generador está deshabilitado responde siempre el mismo 503, sin filtrar
// detalles internos.
func (h *SaleHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadSalePDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		// Cualquier fallo de generación degrada al mismo error fijo.
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PDF_NO_DISPONIBLE", Message: "la generación de PDF no está disponible"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
