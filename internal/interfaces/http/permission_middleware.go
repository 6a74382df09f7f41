package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// verificar permisos. Lo implementa *postgres.GroupRepo; el uso de interfaz
// evita acoplar la capa HTTP a la infraestructura.
type permissionChecker interface {
	HasPermission(ctx context.Context, groupName, codename string) (bool, error)
}

// RequirePermission devuelve un middleware Fiber que verifica si el grupo del
// token JWT tiene asignado el permiso. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalGroup).
//
// Comportamiento:
//   - 403 Forbidden → el grupo no tiene el permiso.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay grupo en el contexto, responde 401.
func RequirePermission(codename string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		group := GetGroup(c)
		if group == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "grupo no encontrado en el token",
			})
		}

		ok, err := checker.HasPermission(c.Context(), group, codename)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no tiene permiso para realizar esta acción",
			})
		}

		return c.Next()
	}
}
