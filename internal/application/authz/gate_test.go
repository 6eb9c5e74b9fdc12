package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
)

// Fakes mínimos: solo los métodos que el gate consulta tienen lógica.

type stubBusinessRepo struct {
	businesses map[string]*entity.Business
}

func (r *stubBusinessRepo) Create(*entity.Business) error { return nil }
func (r *stubBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.businesses[id], nil
}
func (r *stubBusinessRepo) GetByAPIKey(string) (*entity.Business, error) { return nil, nil }
func (r *stubBusinessRepo) Update(*entity.Business) error                { return nil }
func (r *stubBusinessRepo) UpdateAPIKey(string, string) error            { return nil }
func (r *stubBusinessRepo) ListAccessibleByUser(string) ([]*entity.Business, error) {
	return nil, nil
}
func (r *stubBusinessRepo) Delete(string) error { return nil }

type stubEmployeeRepo struct {
	memberships map[string]*entity.BusinessEmployee // businessID + "|" + userID
}

func (r *stubEmployeeRepo) Create(*entity.BusinessEmployee) error { return nil }
func (r *stubEmployeeRepo) GetByBusinessAndUser(businessID, userID string) (*entity.BusinessEmployee, error) {
	return r.memberships[businessID+"|"+userID], nil
}
func (r *stubEmployeeRepo) ListByBusiness(string) ([]*entity.BusinessEmployee, error) {
	return nil, nil
}
func (r *stubEmployeeRepo) Delete(string, string) error { return nil }

func newTestGate() *Gate {
	businesses := map[string]*entity.Business{
		"biz-1": {ID: "biz-1", OwnerID: "owner-1", Name: "Concesionario Norte", Active: true},
	}
	memberships := map[string]*entity.BusinessEmployee{
		"biz-1|emp-1": {ID: "m1", BusinessID: "biz-1", UserID: "emp-1", Role: entity.EmployeeRoleEmployee},
	}
	return NewGate(&stubBusinessRepo{businesses: businesses}, &stubEmployeeRepo{memberships: memberships})
}

func TestGate_DuenoPasaTodosLosNiveles(t *testing.T) {
	gate := newTestGate()

	b, err := gate.Authorize("owner-1", "biz-1", LevelMember)
	require.NoError(t, err)
	assert.Equal(t, "biz-1", b.ID)

	_, err = gate.Authorize("owner-1", "biz-1", LevelOwner)
	assert.NoError(t, err)
}

func TestGate_EmpleadoSoloNivelMiembro(t *testing.T) {
	gate := newTestGate()

	_, err := gate.Authorize("emp-1", "biz-1", LevelMember)
	assert.NoError(t, err)

	_, err = gate.Authorize("emp-1", "biz-1", LevelOwner)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGate_ExtranoRechazado(t *testing.T) {
	gate := newTestGate()

	_, err := gate.Authorize("otro", "biz-1", LevelMember)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGate_NegocioInexistente(t *testing.T) {
	gate := newTestGate()

	_, err := gate.Authorize("owner-1", "no-existe", LevelMember)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El rol informativo admin no abre ninguna puerta en esta capa.
func TestGate_RolGlobalNoOtorgaAcceso(t *testing.T) {
	gate := newTestGate()

	// "admin-1" no posee el negocio ni tiene membresía; su rol de usuario es
	// irrelevante porque el gate ni siquiera lo consulta.
	_, err := gate.Authorize("admin-1", "biz-1", LevelMember)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
