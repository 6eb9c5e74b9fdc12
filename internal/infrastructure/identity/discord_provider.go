// Package identity implementa el cliente HTTP del proveedor de identidad externo.
// La comunidad RP autentica con Discord OAuth; este adaptador introspecta el
// access token contra el endpoint de perfil y devuelve los claims verificados.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/negocios-rp/internal/application/auth"
	"github.com/tu-usuario/negocios-rp/internal/domain"
)

// Verificar en tiempo de compilación que DiscordProvider implementa IdentityProvider.
var _ auth.IdentityProvider = (*DiscordProvider)(nil)

const meEndpoint = "/api/v10/users/@me"

// DiscordProvider adaptador que valida access tokens contra la API de Discord.
// Usa net/http de la librería estándar; no requiere SDK.
type DiscordProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewDiscordProvider construye el adaptador. baseURL suele ser https://discord.com;
// en tests apunta a un httptest.Server.
func NewDiscordProvider(baseURL string, timeout time.Duration) *DiscordProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DiscordProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// discordUser respuesta del endpoint /users/@me.
type discordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
}

// Introspect valida el access token contra el proveedor y devuelve los claims
// verificados. Un 401/403 del proveedor se traduce a domain.ErrUnauthorized;
// cualquier otro fallo se reporta como error de infraestructura.
func (p *DiscordProvider) Introspect(ctx context.Context, accessToken string) (*auth.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+meEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("identity: construir request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: proveedor inalcanzable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity: respuesta %d del proveedor: %s", resp.StatusCode, string(body))
	}

	var user discordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("identity: decodificar respuesta: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("identity: respuesta sin id de usuario")
	}
	if user.Email == "" {
		// Sin scope email no hay forma de espejar el usuario.
		return nil, domain.ErrUnauthorized
	}
	return &auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.GlobalName,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}, nil
}
