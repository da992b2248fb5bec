package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/desafio/contas-api/internal/application/dto"
	"github.com/desafio/contas-api/internal/application/usecase"
	"github.com/desafio/contas-api/internal/domain"
)

// AccountHandler maneja las peticiones HTTP de cuentas mensuales.
type AccountHandler struct {
	uc        *usecase.AccountUseCase
	validator *RequestValidator
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase, validator *RequestValidator) *AccountHandler {
	return &AccountHandler{uc: uc, validator: validator}
}

// Create POST /clientes/:idCliente/contas
// A diferencia de las rutas direccionadas por ID de cuenta, un titular
// inexistente acá es una falla de consulta del negocio y responde 400.
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	customerID, ok := parseID(c, "idCliente")
	if !ok {
		return invalidID(c)
	}
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if violations := h.validator.Check(in); violations != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "body inválido", Violations: violations,
		})
	}

	account, err := h.uc.Register(customerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
		}
		return accountError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// Update PUT /contas/:id
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if violations := h.validator.Check(in); violations != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "body inválido", Violations: violations,
		})
	}

	account, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return accountError(c, err)
	}
	return c.JSON(account)
}

// Delete DELETE /contas/:id — baja lógica: la cuenta queda CANCELLED.
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return accountError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByCustomer GET /clientes/:idCliente/contas
func (h *AccountHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, ok := parseID(c, "idCliente")
	if !ok {
		return invalidID(c)
	}
	accounts, err := h.uc.ListByCustomer(customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return accountError(c, err)
	}
	return c.JSON(accounts)
}

// GetByID GET /contas/:id
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}
	account, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return accountError(c, err)
	}
	return c.JSON(account)
}

// accountError traduce los errores de dominio restantes a HTTP.
func accountError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidField) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FIELD", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
