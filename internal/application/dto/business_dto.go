package dto

import "time"

// CreateBusinessRequest entrada para crear un negocio. El creador queda como dueño.
type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UpdateBusinessRequest entrada para actualizar un negocio (solo dueño).
type UpdateBusinessRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Active   *bool   `json:"active"`
}

// BusinessResponse salida de un negocio. La api key solo se incluye para el dueño.
type BusinessResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	APIKey    *string   `json:"api_key,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessListResponse lista de negocios accesibles.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
}

// RotateAPIKeyResponse nueva api key tras la rotación.
type RotateAPIKeyResponse struct {
	APIKey string `json:"api_key"`
}
