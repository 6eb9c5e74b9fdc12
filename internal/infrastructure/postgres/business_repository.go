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

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, owner_id, name, category, api_key, active, created_at, updated_at`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Category, &b.APIKey, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, owner_id, name, category, api_key, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.OwnerID, business.Name, business.Category,
		business.APIKey, business.Active, business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	b, err := scanBusiness(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

// GetByAPIKey resuelve el negocio dueño de una api key.
func (r *BusinessRepo) GetByAPIKey(apiKey string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE api_key = $1`
	b, err := scanBusiness(r.q.QueryRow(context.Background(), query, apiKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by api key: %w", err)
	}
	return b, nil
}

// Update actualiza nombre, categoría y flag activo. owner_id y api_key no se tocan aquí.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, category = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.Category, business.Active, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

// UpdateAPIKey reemplaza la api key del negocio.
func (r *BusinessRepo) UpdateAPIKey(businessID, apiKey string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE businesses SET api_key = $2, updated_at = now() WHERE id = $1`,
		businessID, apiKey,
	)
	if err != nil {
		return fmt.Errorf("update business api key: %w", err)
	}
	return nil
}

// ListAccessibleByUser devuelve los negocios propios más aquellos con membresía, sin duplicados.
func (r *BusinessRepo) ListAccessibleByUser(userID string) ([]*entity.Business, error) {
	query := `
		SELECT DISTINCT b.id, b.owner_id, b.name, b.category, b.api_key, b.active, b.created_at, b.updated_at
		FROM businesses b
		LEFT JOIN business_employees e ON e.business_id = b.id
		WHERE b.owner_id = $1 OR e.user_id = $1
		ORDER BY b.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list accessible businesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Category, &b.APIKey, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina un negocio. Los FKs con ON DELETE CASCADE arrastran empleados,
// productos, ventas, líneas y facturas.
func (r *BusinessRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}
