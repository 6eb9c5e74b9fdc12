package usecase

import (
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// Fakes en memoria para los casos de uso CRUD.

type fakeBusinessRepo struct {
	businesses map[string]entity.Business
	employees  *fakeEmployeeRepo
}

var _ repository.BusinessRepository = (*fakeBusinessRepo)(nil)

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	r.businesses[b.ID] = *b
	return nil
}

func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBusinessRepo) GetByAPIKey(apiKey string) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.APIKey != nil && *b.APIKey == apiKey {
			bb := b
			return &bb, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) Update(b *entity.Business) error {
	r.businesses[b.ID] = *b
	return nil
}

func (r *fakeBusinessRepo) UpdateAPIKey(businessID, apiKey string) error {
	b, ok := r.businesses[businessID]
	if !ok {
		return domain.ErrNotFound
	}
	b.APIKey = &apiKey
	r.businesses[businessID] = b
	return nil
}

func (r *fakeBusinessRepo) ListAccessibleByUser(userID string) ([]*entity.Business, error) {
	seen := map[string]bool{}
	var out []*entity.Business
	for _, b := range r.businesses {
		if b.OwnerID == userID {
			bb := b
			out = append(out, &bb)
			seen[b.ID] = true
		}
	}
	if r.employees != nil {
		for _, e := range r.employees.memberships {
			if e.UserID == userID && !seen[e.BusinessID] {
				if b, ok := r.businesses[e.BusinessID]; ok {
					bb := b
					out = append(out, &bb)
					seen[b.ID] = true
				}
			}
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) Delete(id string) error {
	delete(r.businesses, id)
	return nil
}

type fakeEmployeeRepo struct {
	memberships map[string]entity.BusinessEmployee // businessID + "|" + userID
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func (r *fakeEmployeeRepo) Create(e *entity.BusinessEmployee) error {
	key := e.BusinessID + "|" + e.UserID
	if _, ok := r.memberships[key]; ok {
		return domain.ErrDuplicate
	}
	r.memberships[key] = *e
	return nil
}

func (r *fakeEmployeeRepo) GetByBusinessAndUser(businessID, userID string) (*entity.BusinessEmployee, error) {
	e, ok := r.memberships[businessID+"|"+userID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) ListByBusiness(businessID string) ([]*entity.BusinessEmployee, error) {
	var out []*entity.BusinessEmployee
	for _, e := range r.memberships {
		if e.BusinessID == businessID {
			ee := e
			out = append(out, &ee)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(businessID, userID string) error {
	delete(r.memberships, businessID+"|"+userID)
	return nil
}

type fakeUserRepo struct {
	users map[string]entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Upsert(u *entity.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty int) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	r.products[productID] = p
	return true, nil
}

func (r *fakeProductRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BusinessID == businessID {
			pp := p
			out = append(out, &pp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(businessIDs []string, threshold int) ([]*entity.Product, error) {
	inSet := map[string]bool{}
	for _, id := range businessIDs {
		inSet[id] = true
	}
	var out []*entity.Product
	for _, p := range r.products {
		if inSet[p.BusinessID] && p.Active && p.Stock <= threshold {
			pp := p
			out = append(out, &pp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}
