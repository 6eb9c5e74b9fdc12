package dto

import "time"

// LoginRequest entrada de login: el access token emitido por el proveedor de identidad.
// Ningún otro campo del body se considera confiable; perfil y email salen de la introspección.
type LoginRequest struct {
	AccessToken string `json:"access_token"`
}

// UserResponse salida del espejo local de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token de sesión más el usuario resuelto.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
