package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/application/sales"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
)

type saleFixture struct {
	uc        *sales.CreateSaleUseCase
	sales     *fakeSaleRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func newSaleFixture(products ...*entity.Product) *saleFixture {
	productRepo := newFakeProductRepo(products...)
	customerRepo := newFakeCustomerRepo(&entity.Customer{
		ID:        "c1",
		FirstName: "Ana",
		LastName:  "García",
		Document:  "12345678",
	})
	saleRepo := newFakeSaleRepo()
	movementRepo := &fakeMovementRepo{}
	tx := &fakeSaleTxRunner{sales: saleRepo, products: productRepo, movements: movementRepo}
	return &saleFixture{
		uc:        sales.NewCreateSaleUseCase(tx, customerRepo, productRepo),
		sales:     saleRepo,
		products:  productRepo,
		movements: movementRepo,
	}
}

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestCreateSale_TotalYStock(t *testing.T) {
	f := newSaleFixture(
		&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 10},
		&entity.Product{ID: "p2", SKU: "B", Name: "Lápiz", Price: price("0.80"), Stock: 20},
	)

	out, err := f.uc.CreateSale(context.Background(), "demo_ventas", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p2", Quantity: 5},
		},
	})
	require.NoError(t, err)

	// Total = 4×2.50 + 5×0.80 = 14.00; el precio sale del producto, no del cliente.
	assert.True(t, out.Total.Equal(price("14.00")), "total %s", out.Total)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Subtotal.Equal(price("10.00")))
	assert.True(t, out.Items[1].Subtotal.Equal(price("4.00")))

	// Stock descontado exactamente.
	assert.Equal(t, 6, f.products.stockOf("p1"))
	assert.Equal(t, 15, f.products.stockOf("p2"))

	// Un movimiento "salida" por línea, con el código de la venta en el motivo.
	require.Len(t, f.movements.movements, 2)
	for _, m := range f.movements.movements {
		assert.Equal(t, entity.MovementSalida, m.Type)
		assert.Equal(t, "Venta "+out.Code, m.Reason)
		assert.Equal(t, "demo_ventas", m.CreatedBy)
	}

	// La cabecera persistida lleva el total acumulado.
	saved, err := f.sales.GetByID(out.ID)
	require.NoError(t, err)
	assert.True(t, saved.Total.Equal(price("14.00")))
	assert.Equal(t, "García, Ana (12345678)", out.CustomerLabel)
}

func TestCreateSale_CodigoGenerado(t *testing.T) {
	f := newSaleFixture(&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 10})

	out, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Len(t, out.Code, 10, "el código generado tiene 10 caracteres")
}

// Stock 3, cantidad pedida 5: nada se escribe y el banner lista el faltante.
func TestCreateSale_StockInsuficiente_NoEscribeNada(t *testing.T) {
	f := newSaleFixture(
		&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 3},
		&entity.Product{ID: "p2", SKU: "B", Name: "Lápiz", Price: price("0.80"), Stock: 20},
	)

	_, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 5},
			{ProductID: "p2", Quantity: 2},
		},
	})
	require.Error(t, err)

	var vErr *sales.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Stock insuficiente para: Cuaderno: 3 disponibles", vErr.Banner())
	require.Len(t, vErr.FieldErrors, 1)
	assert.Equal(t, 0, vErr.FieldErrors[0].Index)
	assert.Equal(t, "quantity", vErr.FieldErrors[0].Field)
	assert.Equal(t, "Sólo hay 3 unidades disponibles de Cuaderno.", vErr.FieldErrors[0].Message)

	// Todo o nada: ni la línea válida se persistió.
	assert.Empty(t, f.sales.sales)
	assert.Empty(t, f.sales.items)
	assert.Empty(t, f.movements.movements)
	assert.Equal(t, 3, f.products.stockOf("p1"))
	assert.Equal(t, 20, f.products.stockOf("p2"))
}

func TestCreateSale_VariosFaltantes_BannerAgregado(t *testing.T) {
	f := newSaleFixture(
		&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 3},
		&entity.Product{ID: "p2", SKU: "B", Name: "Lápiz", Price: price("0.80"), Stock: 1},
	)

	_, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 5},
			{ProductID: "p2", Quantity: 4},
		},
	})
	var vErr *sales.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Stock insuficiente para: Cuaderno: 3 disponibles; Lápiz: 1 disponibles", vErr.Banner())
}

func TestCreateSale_ClienteInvalido(t *testing.T) {
	f := newSaleFixture(&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 10})

	_, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "no-existe",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	var vErr *sales.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.FieldErrors, 1)
	assert.Equal(t, -1, vErr.FieldErrors[0].Index)
	assert.Equal(t, "customer_id", vErr.FieldErrors[0].Field)
	assert.Equal(t, "Seleccione un cliente válido.", vErr.FieldErrors[0].Message)
}

func TestCreateSale_SinItems(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
	})
	var vErr *sales.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.FieldErrors, 1)
	assert.Equal(t, "items", vErr.FieldErrors[0].Field)
	assert.Equal(t, "Agregue al menos un producto.", vErr.FieldErrors[0].Message)
}

// Las líneas excluidas no se validan ni se persisten.
func TestCreateSale_LineaExcluida_SeIgnora(t *testing.T) {
	f := newSaleFixture(
		&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 10},
		&entity.Product{ID: "p2", SKU: "B", Name: "Lápiz", Price: price("0.80"), Stock: 0},
	)

	out, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 99, Exclude: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ProductID)
	assert.Equal(t, 0, f.products.stockOf("p2"))
}

func TestCreateSale_CantidadCero(t *testing.T) {
	f := newSaleFixture(&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 10})

	_, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	var vErr *sales.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.FieldErrors, 1)
	assert.Equal(t, "La cantidad debe ser mayor que 0.", vErr.FieldErrors[0].Message)
}

func TestCreateSale_FechaRFC3339(t *testing.T) {
	f := newSaleFixture(&entity.Product{ID: "p1", SKU: "A", Name: "Cuaderno", Price: price("2.50"), Stock: 10})

	out, err := f.uc.CreateSale(context.Background(), "u", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	_, perr := time.Parse(time.RFC3339, out.Date)
	assert.NoError(t, perr)
}
