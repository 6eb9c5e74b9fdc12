package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/application/usecase"
)

// EmployeeHandler maneja la plantilla de empleados de un negocio (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Add godoc
// @Summary      Contratar empleado (solo dueño)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.AddEmployeeRequest  true  "Usuario y rol"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/employees [post]
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	var in dto.AddEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	out, err := h.uc.Add(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados del negocio (dueño y miembros)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Despedir empleado (solo dueño)
// @Tags         employees
// @Security     Bearer
// @Param        id      path  string  true  "ID del negocio"
// @Param        userId  path  string  true  "ID del usuario empleado"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/employees/{userId} [delete]
func (h *EmployeeHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(GetUserID(c), c.Params("id"), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
