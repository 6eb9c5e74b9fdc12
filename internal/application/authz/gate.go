// Package authz centraliza la política de autorización sobre negocios.
// Todas las rutas consumen este gate en lugar de comparar owner_id a mano.
package authz

import (
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// Level nivel de acceso requerido sobre un negocio.
type Level int

const (
	// LevelMember dueño o empleado del negocio: lecturas y escrituras de operación diaria.
	LevelMember Level = iota
	// LevelOwner solo el dueño: borrado, empleados, api key.
	LevelOwner
)

// Gate decide si un usuario puede actuar sobre un negocio.
// El rol informativo del usuario (admin incluido) no otorga acceso en esta capa.
type Gate struct {
	businessRepo repository.BusinessRepository
	employeeRepo repository.EmployeeRepository
}

// NewGate construye el gate.
func NewGate(businessRepo repository.BusinessRepository, employeeRepo repository.EmployeeRepository) *Gate {
	return &Gate{businessRepo: businessRepo, employeeRepo: employeeRepo}
}

// Authorize resuelve el negocio y verifica el nivel de acceso del usuario.
// Retorna el negocio si pasa; domain.ErrNotFound si el negocio no existe;
// domain.ErrForbidden si el usuario no alcanza el nivel.
func (g *Gate) Authorize(userID, businessID string, level Level) (*entity.Business, error) {
	business, err := g.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return business, g.CheckBusiness(userID, business, level)
}

// CheckBusiness verifica el nivel de acceso cuando el caller ya tiene el negocio cargado.
func (g *Gate) CheckBusiness(userID string, business *entity.Business, level Level) error {
	if business.OwnerID == userID {
		return nil
	}
	if level == LevelOwner {
		return domain.ErrForbidden
	}
	membership, err := g.employeeRepo.GetByBusinessAndUser(business.ID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return domain.ErrForbidden
	}
	return nil
}
