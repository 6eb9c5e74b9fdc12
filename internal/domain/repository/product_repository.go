package repository

import "github.com/tu-usuario/negocios-rp/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta qty de forma condicional y atómica
	// (stock >= qty). Devuelve false si no se afectó ninguna fila.
	DecrementStock(productID string, qty int) (bool, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock lista productos activos con stock <= threshold en los negocios dados.
	ListLowStock(businessIDs []string, threshold int) ([]*entity.Product, error)
	Delete(id string) error
}
