package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos de un negocio.
// El stock solo se muta aquí (edición manual) o en el orquestador de ventas.
type ProductUseCase struct {
	repo             repository.ProductRepository
	businessRepo     repository.BusinessRepository
	gate             *authz.Gate
	defaultThreshold int
}

// NewProductUseCase construye el caso de uso. defaultThreshold es el umbral de
// stock bajo cuando el caller no indica uno.
func NewProductUseCase(repo repository.ProductRepository, businessRepo repository.BusinessRepository, gate *authz.Gate, defaultThreshold int) *ProductUseCase {
	return &ProductUseCase{repo: repo, businessRepo: businessRepo, gate: gate, defaultThreshold: defaultThreshold}
}

// Create crea un producto en un negocio del que el caller es miembro.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.BusinessID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.gate.Authorize(userID, in.BusinessID, authz.LevelMember); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		BusinessID:  in.BusinessID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto (miembro del negocio dueño).
func (uc *ProductUseCase) GetByID(userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.gate.Authorize(userID, product.BusinessID, authz.LevelMember); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (miembro). El negocio dueño no es editable.
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.gate.Authorize(userID, product.BusinessID, authz.LevelMember); err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de un negocio (miembro) con paginación.
func (uc *ProductUseCase) List(userID, businessID string, limit, offset int) (*dto.ProductListResponse, error) {
	if _, err := uc.gate.Authorize(userID, businessID, authz.LevelMember); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista productos con stock <= threshold en todos los negocios
// accesibles al usuario. Con threshold <= 0 se usa el umbral configurado.
func (uc *ProductUseCase) ListLowStock(userID string, threshold int) (*dto.ProductListResponse, error) {
	if threshold <= 0 {
		threshold = uc.defaultThreshold
	}
	businesses, err := uc.businessRepo.ListAccessibleByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return &dto.ProductListResponse{Items: []dto.ProductResponse{}}, nil
	}
	ids := make([]string, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}
	list, err := uc.repo.ListLowStock(ids, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Delete elimina un producto (solo dueño del negocio).
func (uc *ProductUseCase) Delete(userID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.gate.Authorize(userID, product.BusinessID, authz.LevelOwner); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
