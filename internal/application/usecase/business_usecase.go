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

// BusinessUseCase casos de uso CRUD para negocios. El dueño es inmutable tras la creación.
type BusinessUseCase struct {
	repo repository.BusinessRepository
	gate *authz.Gate
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, gate *authz.Gate) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, gate: gate}
}

// Create crea un negocio: el caller queda como dueño y se emite la api key.
func (uc *BusinessUseCase) Create(ownerID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	apiKey, err := newAPIKey()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	business := &entity.Business{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Category:  in.Category,
		APIKey:    &apiKey,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business, true), nil
}

// GetByID obtiene un negocio. La api key solo se revela al dueño.
func (uc *BusinessUseCase) GetByID(userID, id string) (*dto.BusinessResponse, error) {
	business, err := uc.gate.Authorize(userID, id, authz.LevelMember)
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(business, business.OwnerID == userID), nil
}

// List lista los negocios accesibles al usuario (propios más membresías).
func (uc *BusinessUseCase) List(userID string) (*dto.BusinessListResponse, error) {
	list, err := uc.repo.ListAccessibleByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBusinessResponse(b, b.OwnerID == userID))
	}
	return &dto.BusinessListResponse{Items: items}, nil
}

// Update actualiza nombre, categoría o flag activo (solo dueño).
func (uc *BusinessUseCase) Update(userID, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.gate.Authorize(userID, id, authz.LevelOwner)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		business.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		business.Category = *in.Category
	}
	if in.Active != nil {
		business.Active = *in.Active
	}
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business, true), nil
}

// RotateAPIKey reemplaza la api key del negocio (solo dueño). La clave anterior
// deja de aceptarse de inmediato en /game/sales.
func (uc *BusinessUseCase) RotateAPIKey(userID, id string) (*dto.RotateAPIKeyResponse, error) {
	business, err := uc.gate.Authorize(userID, id, authz.LevelOwner)
	if err != nil {
		return nil, err
	}
	apiKey, err := newAPIKey()
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateAPIKey(business.ID, apiKey); err != nil {
		return nil, err
	}
	return &dto.RotateAPIKeyResponse{APIKey: apiKey}, nil
}

// Delete elimina un negocio (solo dueño). La BD cascadea empleados, productos,
// ventas, líneas y facturas.
func (uc *BusinessUseCase) Delete(userID, id string) error {
	business, err := uc.gate.Authorize(userID, id, authz.LevelOwner)
	if err != nil {
		return err
	}
	return uc.repo.Delete(business.ID)
}

func toBusinessResponse(b *entity.Business, includeKey bool) *dto.BusinessResponse {
	resp := &dto.BusinessResponse{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Category:  b.Category,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if includeKey {
		resp.APIKey = b.APIKey
	}
	return resp
}
