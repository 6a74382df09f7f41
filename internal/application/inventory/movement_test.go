package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastan/inventario-ventas/internal/application/inventory"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
)

func newMovementFixture(stock int) (*inventory.MovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo(&entity.Product{
		ID:        "p1",
		SKU:       "SKU-001",
		Name:      "Tornillo 3mm",
		Stock:     stock,
		MinStock:  5,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	movements := &fakeMovementRepo{}
	tx := &fakeTxRunner{products: products, movements: movements}
	return inventory.NewMovementUseCase(tx, products), products, movements
}

func TestRegisterMovement_Entrada_SumaStock(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementEntrada,
		Quantity:  4,
		Reason:    "Compra a proveedor",
		Actor:     "demo_stock",
	})
	require.NoError(t, err)

	assert.Equal(t, 14, products.stockOf("p1"))
	assert.Equal(t, entity.MovementEntrada, mov.Type)
	assert.Equal(t, 4, mov.Quantity)
	assert.Len(t, movements.movements, 1)
	assert.Equal(t, "demo_stock", movements.movements[0].CreatedBy)
}

func TestRegisterMovement_Salida_DescuentaStock(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementSalida,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, products.stockOf("p1"))
	assert.Len(t, movements.movements, 1)
}

// Una salida mayor que el stock no debe tocar ni el stock ni el libro.
func TestRegisterMovement_SalidaInsuficiente_NoEscribeNada(t *testing.T) {
	uc, products, movements := newMovementFixture(3)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementSalida,
		Quantity:  5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, products.stockOf("p1"))
	assert.Empty(t, movements.movements)
}

// Ajuste con valor absoluto: quantity es el stock objetivo; el movimiento
// registrado guarda |objetivo − stock previo|.
func TestRegisterMovement_AjusteAbsoluto_RegistraDelta(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementAjuste,
		Quantity:  4,
		Intent:    inventory.SetAbsolute,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, products.stockOf("p1"))
	assert.Equal(t, 6, mov.Quantity, "el libro registra el delta, no el objetivo")
	assert.Len(t, movements.movements, 1)
}

// Un ajuste al mismo valor no cambia nada: no debe insertar un movimiento de
// cantidad cero (la base lo rechazaría con su CHECK quantity > 0).
func TestRegisterMovement_AjusteAlMismoValor_NoRegistraMovimiento(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementAjuste,
		Quantity:  10,
		Intent:    inventory.SetAbsolute,
	})
	require.NoError(t, err)

	assert.Nil(t, mov)
	assert.Equal(t, 10, products.stockOf("p1"))
	assert.Empty(t, movements.movements)
}

func TestRegisterMovement_AjusteDeltaCero_NoRegistraMovimiento(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementAjuste,
		Quantity:  0,
		Intent:    inventory.ApplyDelta,
	})
	require.NoError(t, err)

	assert.Nil(t, mov)
	assert.Equal(t, 10, products.stockOf("p1"))
	assert.Empty(t, movements.movements)
}

func TestRegisterMovement_AjusteDelta_AplicaSigno(t *testing.T) {
	uc, products, _ := newMovementFixture(10)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementAjuste,
		Quantity:  -3,
		Intent:    inventory.ApplyDelta,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, products.stockOf("p1"))
	assert.Equal(t, 3, mov.Quantity)
}

func TestRegisterMovement_AjusteDeltaNegativoExcesivo_Falla(t *testing.T) {
	uc, products, movements := newMovementFixture(2)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementAjuste,
		Quantity:  -5,
		Intent:    inventory.ApplyDelta,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, products.stockOf("p1"))
	assert.Empty(t, movements.movements)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	uc, _, _ := newMovementFixture(10)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      "devolucion",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := newMovementFixture(10)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementEntrada,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustStock_CambiaYRegistraMovimiento(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	res, err := uc.AdjustStock(context.Background(), inventory.AdjustInput{
		ProductID: "p1",
		Target:    25,
		Actor:     "admin",
	})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 15, res.Delta)
	assert.Equal(t, 25, res.Stock)
	assert.Equal(t, 25, products.stockOf("p1"))
	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementAjuste, movements.movements[0].Type)
	assert.Equal(t, 15, movements.movements[0].Quantity)
	assert.Equal(t, "Ajuste de stock", movements.movements[0].Reason)
}

// Si el objetivo coincide con el stock actual no se escribe nada.
func TestAdjustStock_SinCambio_NoRegistraMovimiento(t *testing.T) {
	uc, products, movements := newMovementFixture(10)

	res, err := uc.AdjustStock(context.Background(), inventory.AdjustInput{
		ProductID: "p1",
		Target:    10,
	})
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Equal(t, 0, res.Delta)
	assert.Equal(t, 10, products.stockOf("p1"))
	assert.Empty(t, movements.movements)
}

func TestAdjustStock_TargetNegativo_Falla(t *testing.T) {
	uc, _, _ := newMovementFixture(10)

	_, err := uc.AdjustStock(context.Background(), inventory.AdjustInput{
		ProductID: "p1",
		Target:    -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
