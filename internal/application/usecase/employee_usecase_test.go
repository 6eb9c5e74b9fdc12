package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
)

func newEmployeeFixture() (*fakeEmployeeRepo, *EmployeeUseCase) {
	employeeRepo := &fakeEmployeeRepo{memberships: map[string]entity.BusinessEmployee{}}
	businessRepo := &fakeBusinessRepo{businesses: map[string]entity.Business{
		"biz-1": {ID: "biz-1", OwnerID: "owner-1", Name: "Taller", Category: entity.CategoryMechanic, Active: true},
	}, employees: employeeRepo}
	userRepo := &fakeUserRepo{users: map[string]entity.User{
		"owner-1": {ID: "owner-1", Email: "owner@example.com", Role: entity.RoleOwner, CreatedAt: time.Now()},
		"emp-1":   {ID: "emp-1", Email: "emp@example.com", Role: entity.RoleEmployee, CreatedAt: time.Now()},
	}}
	gate := authz.NewGate(businessRepo, employeeRepo)
	return employeeRepo, NewEmployeeUseCase(employeeRepo, userRepo, gate)
}

func TestEmployee_Contratar(t *testing.T) {
	_, uc := newEmployeeFixture()

	out, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", out.UserID)
	assert.Equal(t, entity.EmployeeRoleEmployee, out.Role, "sin rol explícito se asume employee")
}

func TestEmployee_ContratarDosVecesEsDuplicado(t *testing.T) {
	_, uc := newEmployeeFixture()

	_, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "emp-1"})
	require.NoError(t, err)

	_, err = uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "emp-1", Role: entity.EmployeeRoleManager})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "una membresía por par negocio-usuario")
}

func TestEmployee_DuenoNoPuedeSerSuEmpleado(t *testing.T) {
	_, uc := newEmployeeFixture()

	_, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "owner-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEmployee_UsuarioDesconocido(t *testing.T) {
	_, uc := newEmployeeFixture()

	_, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEmployee_RolInvalido(t *testing.T) {
	_, uc := newEmployeeFixture()

	_, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "emp-1", Role: "ceo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployee_SoloDuenoMutaPlantilla(t *testing.T) {
	_, uc := newEmployeeFixture()

	_, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "emp-1"})
	require.NoError(t, err)

	// El empleado puede listar pero no contratar ni despedir.
	out, err := uc.List("emp-1", "biz-1")
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)

	_, err = uc.Add("emp-1", "biz-1", dto.AddEmployeeRequest{UserID: "otro"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Remove("emp-1", "biz-1", "emp-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEmployee_Despedir(t *testing.T) {
	repo, uc := newEmployeeFixture()

	_, err := uc.Add("owner-1", "biz-1", dto.AddEmployeeRequest{UserID: "emp-1"})
	require.NoError(t, err)

	require.NoError(t, uc.Remove("owner-1", "biz-1", "emp-1"))
	assert.Empty(t, repo.memberships)

	// Despedir a quien no está es not found.
	err = uc.Remove("owner-1", "biz-1", "emp-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
