package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// EmployeeUseCase gestión de empleados de un negocio (solo dueño para mutaciones).
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	userRepo repository.UserRepository
	gate     *authz.Gate
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, userRepo repository.UserRepository, gate *authz.Gate) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, userRepo: userRepo, gate: gate}
}

// Add vincula un usuario como empleado del negocio. El dueño no puede ser su
// propio empleado; una segunda vinculación del mismo usuario retorna ErrDuplicate
// (constraint único business_id + user_id).
func (uc *EmployeeUseCase) Add(ownerID, businessID string, in dto.AddEmployeeRequest) (*dto.EmployeeResponse, error) {
	business, err := uc.gate.Authorize(ownerID, businessID, authz.LevelOwner)
	if err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UserID == business.OwnerID {
		return nil, domain.ErrConflict
	}
	role := in.Role
	if role == "" {
		role = entity.EmployeeRoleEmployee
	}
	if role != entity.EmployeeRoleManager && role != entity.EmployeeRoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	employee := &entity.BusinessEmployee{
		ID:         uuid.New().String(),
		BusinessID: business.ID,
		UserID:     in.UserID,
		Role:       role,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista los empleados del negocio (miembro).
func (uc *EmployeeUseCase) List(userID, businessID string) (*dto.EmployeeListResponse, error) {
	if _, err := uc.gate.Authorize(userID, businessID, authz.LevelMember); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items}, nil
}

// Remove desvincula a un empleado (solo dueño).
func (uc *EmployeeUseCase) Remove(ownerID, businessID, employeeUserID string) error {
	if _, err := uc.gate.Authorize(ownerID, businessID, authz.LevelOwner); err != nil {
		return err
	}
	membership, err := uc.repo.GetByBusinessAndUser(businessID, employeeUserID)
	if err != nil {
		return err
	}
	if membership == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(businessID, employeeUserID)
}

func toEmployeeResponse(e *entity.BusinessEmployee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		BusinessID: e.BusinessID,
		UserID:     e.UserID,
		Role:       e.Role,
		CreatedAt:  e.CreatedAt,
	}
}
