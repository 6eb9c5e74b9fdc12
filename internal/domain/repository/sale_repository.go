package repository

import "github.com/tu-usuario/negocios-rp/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Sale, error)
}
