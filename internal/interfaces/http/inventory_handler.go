package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/application/inventory"
	"github.com/jcastan/inventario-ventas/internal/domain"
)

// InventoryHandler maneja movimientos y ajustes de stock (protegido).
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement registra un movimiento manual; POST /api/products/:id/movements.
// Para tipo "ajuste", quantity es el stock absoluto deseado; si coincide con el
// stock actual responde 200 sin registrar movimiento.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	productID := c.Params("id")
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fieldErrs := validateStruct(in); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", FieldErrors: fieldErrs,
		})
	}

	mov, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID: productID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Intent:    inventory.SetAbsolute,
		Reason:    in.Reason,
		Actor:     GetUsername(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: domain.ErrInsufficientStock.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if mov == nil {
		// Ajuste al mismo valor: no hay movimiento que registrar.
		return c.JSON(dto.AdjustStockResponse{
			ProductID: productID,
			Stock:     in.Quantity,
			Changed:   false,
			Message:   "El stock ya tenía ese valor; no se registró movimiento.",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:        mov.ID,
		ProductID: mov.ProductID,
		Type:      mov.Type,
		Quantity:  mov.Quantity,
		Reason:    mov.Reason,
		Date:      mov.Date,
		CreatedBy: mov.CreatedBy,
	})
}

// AdjustStock fija el stock en un valor absoluto; POST /api/products/:id/adjust.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fieldErrs := validateStruct(in); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", FieldErrors: fieldErrs,
		})
	}

	res, err := h.uc.AdjustStock(c.Context(), inventory.AdjustInput{
		ProductID: productID,
		Target:    in.Target,
		Reason:    in.Reason,
		Actor:     GetUsername(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el stock objetivo no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	msg := "Stock actualizado."
	if !res.Changed {
		msg = "El stock ya tenía ese valor; no se registró movimiento."
	}
	return c.JSON(dto.AdjustStockResponse{
		ProductID: productID,
		Stock:     res.Stock,
		Changed:   res.Changed,
		Message:   msg,
	})
}
