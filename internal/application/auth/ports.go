package auth

import "context"

// Identity claims verificados que devuelve el proveedor externo al introspectar
// un access token. El ID es el identificador opaco del usuario en el proveedor.
type Identity struct {
	ID       string
	Username string
	Name     string
	Email    string
	Avatar   string
}

// IdentityProvider puerto hacia el servicio de identidad externo.
// Introspect valida el access token y devuelve los claims verificados;
// retorna domain.ErrUnauthorized si el token es inválido o expiró.
type IdentityProvider interface {
	Introspect(ctx context.Context, accessToken string) (*Identity, error)
}
