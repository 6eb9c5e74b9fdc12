package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/application/sales"
)

// GameHandler recibe ventas generadas por el servidor de juego. No pasa por el
// middleware JWT: la autenticación es la api key del negocio incluida en el body.
type GameHandler struct {
	uc *sales.CreateSaleUseCase
}

// NewGameHandler construye el handler.
func NewGameHandler(uc *sales.CreateSaleUseCase) *GameHandler {
	return &GameHandler{uc: uc}
}

// CreateSale godoc
// @Summary      Registrar venta desde el servidor de juego (api key)
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GameSaleRequest  true  "Venta con api key del negocio"
// @Success      201   {object}  dto.GameSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/game/sales [post]
func (h *GameHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.GameSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateFromGame(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
