package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/desafio/contas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	AccountUC  *usecase.AccountUseCase
	Validator  *RequestValidator
}

// Router registra las rutas de la API (mismas formas de ruta que el servicio original).
func Router(app *fiber.App, deps RouterDeps) {
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Validator)
	accountHandler := NewAccountHandler(deps.AccountUC, deps.Validator)

	clientes := app.Group("/clientes")
	clientes.Post("/", customerHandler.Create)
	clientes.Get("/", customerHandler.List)
	clientes.Get("/:id", customerHandler.GetByID)
	clientes.Put("/:id", customerHandler.Update)
	clientes.Delete("/:id", customerHandler.Delete)

	// Cuentas anidadas bajo el titular
	clientes.Post("/:idCliente/contas", accountHandler.Create)
	clientes.Get("/:idCliente/contas", accountHandler.ListByCustomer)

	contas := app.Group("/contas")
	contas.Get("/:id", accountHandler.GetByID)
	contas.Put("/:id", accountHandler.Update)
	contas.Delete("/:id", accountHandler.Delete)
}
