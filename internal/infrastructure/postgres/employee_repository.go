package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste una membresía. El constraint único (business_id, user_id)
// convierte la doble vinculación en domain.ErrDuplicate.
func (r *EmployeeRepo) Create(employee *entity.BusinessEmployee) error {
	query := `
		INSERT INTO business_employees (id, business_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.BusinessID, employee.UserID, employee.Role, employee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByBusinessAndUser devuelve la membresía o nil si no existe.
func (r *EmployeeRepo) GetByBusinessAndUser(businessID, userID string) (*entity.BusinessEmployee, error) {
	query := `
		SELECT id, business_id, user_id, role, created_at
		FROM business_employees WHERE business_id = $1 AND user_id = $2`
	var e entity.BusinessEmployee
	err := r.q.QueryRow(context.Background(), query, businessID, userID).Scan(
		&e.ID, &e.BusinessID, &e.UserID, &e.Role, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ListByBusiness lista las membresías de un negocio.
func (r *EmployeeRepo) ListByBusiness(businessID string) ([]*entity.BusinessEmployee, error) {
	query := `
		SELECT id, business_id, user_id, role, created_at
		FROM business_employees WHERE business_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessEmployee
	for rows.Next() {
		var e entity.BusinessEmployee
		if err := rows.Scan(&e.ID, &e.BusinessID, &e.UserID, &e.Role, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina la membresía de un usuario en un negocio.
func (r *EmployeeRepo) Delete(businessID, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM business_employees WHERE business_id = $1 AND user_id = $2`,
		businessID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
