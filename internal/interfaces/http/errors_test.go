package http

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocios-rp/internal/domain"
)

// Las fallas de una venta son errores del pedido del cliente, no conflictos
// de estado: stock insuficiente y producto ajeno al negocio responden 400.
func TestRespondError_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"stock insuficiente", fmt.Errorf("producto Rueda: %w", domain.ErrInsufficientStock), fiber.StatusBadRequest},
		{"producto de otro negocio", fmt.Errorf("producto prod-9: %w", domain.ErrProductMismatch), fiber.StatusBadRequest},
		{"validación", fmt.Errorf("cantidad inválida: %w", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{"api key inválida", domain.ErrInvalidAPIKey, fiber.StatusUnauthorized},
		{"sin sesión", domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{"sin acceso", domain.ErrForbidden, fiber.StatusForbidden},
		{"no encontrado", fmt.Errorf("venta: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{"negocio inactivo", fmt.Errorf("negocio inactivo: %w", domain.ErrConflict), fiber.StatusConflict},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict},
		{"error inesperado", fmt.Errorf("se cayó la base"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}
