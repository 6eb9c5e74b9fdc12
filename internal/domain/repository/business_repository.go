package repository

import "github.com/tu-usuario/negocios-rp/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business.
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	// GetByAPIKey resuelve el negocio dueño de una api key (ruta de integración con el juego).
	GetByAPIKey(apiKey string) (*entity.Business, error)
	Update(business *entity.Business) error
	// UpdateAPIKey reemplaza la api key del negocio (rotación por el dueño).
	UpdateAPIKey(businessID, apiKey string) error
	// ListAccessibleByUser devuelve los negocios que el usuario posee más aquellos
	// donde tiene membresía, sin duplicados.
	ListAccessibleByUser(userID string) ([]*entity.Business, error)
	Delete(id string) error
}
