package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/application/sales"
	"github.com/jcastan/inventario-ventas/internal/domain"
)

// ReportHandler expone las agregaciones de ventas para las gráficas (protegido).
type ReportHandler struct {
	uc *sales.QueryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *sales.QueryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesByDay total vendido por día; GET /api/sales/by-day?from=&to=&customer=.
func (h *ReportHandler) SalesByDay(c *fiber.Ctx) error {
	var in dto.SaleListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	rows, msg, err := h.uc.TotalsByDay(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (formato YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"data": rows, "filter_message": msg})
}

// SalesByProduct importe vendido por producto; GET /api/sales/by-product?from=&to=&customer=.
func (h *ReportHandler) SalesByProduct(c *fiber.Ctx) error {
	var in dto.SaleListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	rows, msg, err := h.uc.TotalsByProduct(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (formato YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"data": rows, "filter_message": msg})
}
