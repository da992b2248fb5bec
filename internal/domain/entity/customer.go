package entity

// Customer representa un cliente titular de cuentas mensuales.
// El ID lo asigna la base de datos (BIGSERIAL) y es inmutable.
type Customer struct {
	ID    int64
	Name  string
	CPF   string // identificación tributaria, única entre clientes
	Email string // opcional; única cuando está presente
	Phone string
}
