package repository

import "github.com/tu-usuario/negocios-rp/internal/domain/entity"

// UserRepository define el puerto de persistencia para el espejo local de usuarios.
type UserRepository interface {
	// Upsert inserta el usuario o, si ya existe (mismo ID del proveedor),
	// refresca email, nombre y avatar con los claims verificados.
	Upsert(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
