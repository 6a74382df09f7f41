package entity

// Permisos por entidad (codenames estilo app.acción_modelo).
const (
	PermViewProducto   = "productos.view_producto"
	PermAddProducto    = "productos.add_producto"
	PermChangeProducto = "productos.change_producto"
	PermDeleteProducto = "productos.delete_producto"

	PermAddMovimiento  = "productos.add_movimientostock"
	PermViewMovimiento = "productos.view_movimientostock"

	PermViewCliente   = "clientes.view_cliente"
	PermAddCliente    = "clientes.add_cliente"
	PermChangeCliente = "clientes.change_cliente"
	PermDeleteCliente = "clientes.delete_cliente"

	PermViewVenta = "ventas.view_venta"
	PermAddVenta  = "ventas.add_venta"
)

// Nombres de grupo conocidos.
const (
	GroupAdministradores = "administradores"
	GroupStock           = "stock"
	GroupVentas          = "ventas"
)

// Group asocia un nombre de grupo con su conjunto de permisos.
type Group struct {
	Name        string
	Permissions []string
}

// AllPermissions devuelve todos los codenames conocidos.
func AllPermissions() []string {
	return []string{
		PermViewProducto, PermAddProducto, PermChangeProducto, PermDeleteProducto,
		PermAddMovimiento, PermViewMovimiento,
		PermViewCliente, PermAddCliente, PermChangeCliente, PermDeleteCliente,
		PermViewVenta, PermAddVenta,
	}
}

// DefaultGroups define los tres grupos provisionados por el comando setup-groups:
// administradores (todo), stock (productos y movimientos), ventas (clientes y ventas).
// El grupo ventas no recibe permisos sobre productos ni movimientos.
func DefaultGroups() []Group {
	return []Group{
		{Name: GroupAdministradores, Permissions: AllPermissions()},
		{Name: GroupStock, Permissions: []string{
			PermViewProducto, PermAddProducto, PermChangeProducto, PermDeleteProducto,
			PermAddMovimiento, PermViewMovimiento,
		}},
		{Name: GroupVentas, Permissions: []string{
			PermViewCliente, PermAddCliente, PermChangeCliente, PermDeleteCliente,
			PermViewVenta, PermAddVenta,
		}},
	}
}
