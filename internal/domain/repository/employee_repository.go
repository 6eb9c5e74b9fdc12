package repository

import "github.com/tu-usuario/negocios-rp/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para BusinessEmployee.
type EmployeeRepository interface {
	Create(employee *entity.BusinessEmployee) error
	// GetByBusinessAndUser devuelve la membresía o nil si no existe.
	GetByBusinessAndUser(businessID, userID string) (*entity.BusinessEmployee, error)
	ListByBusiness(businessID string) ([]*entity.BusinessEmployee, error)
	Delete(businessID, userID string) error
}
