package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// Reintentos de la transacción completa ante una colisión del número de factura.
const invoiceNumberRetries = 3

// CreateSaleUseCase orquesta la creación de una venta: autorización, validación
// de líneas, decremento atómico de stock, snapshots de nombre/precio y emisión
// de la factura, todo dentro de una sola transacción.
//
// Dos puntos de entrada comparten el algoritmo:
//   - Create: ruta web con sesión; el vendedor es el usuario autenticado.
//   - CreateFromGame: ruta del servidor del juego autenticada por api key.
type CreateSaleUseCase struct {
	txRunner     SalesTxRunner
	gate         *authz.Gate
	businessRepo repository.BusinessRepository
	employeeRepo repository.EmployeeRepository
	saleRepo     repository.SaleRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	gate *authz.Gate,
	businessRepo repository.BusinessRepository,
	employeeRepo repository.EmployeeRepository,
	saleRepo repository.SaleRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		gate:         gate,
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
		saleRepo:     saleRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Create crea una venta desde la ruta web autenticada.
func (uc *CreateSaleUseCase) Create(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.BusinessID == "" {
		return nil, domain.ErrInvalidInput
	}
	business, err := uc.gate.Authorize(sellerID, in.BusinessID, authz.LevelMember)
	if err != nil {
		return nil, err
	}
	sale, items, invoice, err := uc.create(ctx, business, sellerID, in.BuyerName, in.BuyerInfo, in.Items, entity.SaleSourceWeb)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items, invoice), nil
}

// CreateFromGame crea una venta desde el servidor del juego. El negocio se
// resuelve por su api key; una clave desconocida rechaza sin tocar nada más.
// El vendedor es el dueño salvo que venga un seller_id válido (dueño o empleado).
func (uc *CreateSaleUseCase) CreateFromGame(ctx context.Context, in dto.GameSaleRequest) (*dto.GameSaleResponse, error) {
	if in.APIKey == "" {
		return nil, domain.ErrInvalidAPIKey
	}
	business, err := uc.businessRepo.GetByAPIKey(in.APIKey)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrInvalidAPIKey
	}

	sellerID := business.OwnerID
	if in.SellerID != "" && in.SellerID != business.OwnerID {
		membership, err := uc.employeeRepo.GetByBusinessAndUser(business.ID, in.SellerID)
		if err != nil {
			return nil, err
		}
		if membership == nil {
			return nil, fmt.Errorf("seller_id no pertenece al negocio: %w", domain.ErrInvalidInput)
		}
		sellerID = in.SellerID
	}

	sale, _, invoice, err := uc.create(ctx, business, sellerID, in.BuyerName, in.BuyerInfo, in.Items, entity.SaleSourceGame)
	if err != nil {
		return nil, err
	}
	return &dto.GameSaleResponse{
		Success:       true,
		SaleID:        sale.ID,
		InvoiceNumber: invoice.Number,
		TotalAmount:   sale.TotalAmount,
	}, nil
}

// create ejecuta el núcleo compartido. Precondiciones ya resueltas por el caller:
// autorización del vendedor y resolución del negocio.
func (uc *CreateSaleUseCase) create(
	ctx context.Context,
	business *entity.Business,
	sellerID, buyerName, buyerInfo string,
	reqItems []dto.SaleItemRequest,
	source string,
) (*entity.Sale, []*entity.SaleItem, *entity.Invoice, error) {
	if buyerName == "" {
		return nil, nil, nil, fmt.Errorf("buyer_name es requerido: %w", domain.ErrInvalidInput)
	}
	if len(reqItems) == 0 {
		return nil, nil, nil, fmt.Errorf("la venta no tiene líneas: %w", domain.ErrInvalidInput)
	}
	for _, item := range reqItems {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, nil, nil, fmt.Errorf("línea con producto vacío o cantidad no positiva: %w", domain.ErrInvalidInput)
		}
	}
	if !business.Active {
		return nil, nil, nil, fmt.Errorf("el negocio está inactivo: %w", domain.ErrConflict)
	}

	// Orden estable de bloqueo: dos ventas concurrentes sobre los mismos
	// productos bloquean las filas en el mismo orden y no se interbloquean.
	sorted := make([]dto.SaleItemRequest, len(reqItems))
	copy(sorted, reqItems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	var sale *entity.Sale
	var items []*entity.SaleItem
	var invoice *entity.Invoice

	// La transacción completa se reintenta solo ante colisión del número de
	// factura (índice único); cualquier otro fallo aborta sin escrituras.
	var err error
	for attempt := 0; attempt < invoiceNumberRetries; attempt++ {
		sale, items, invoice = nil, nil, nil
		err = uc.txRunner.RunSale(ctx, func(
			productRepo repository.ProductRepository,
			saleRepo repository.SaleRepository,
			invoiceRepo repository.InvoiceRepository,
		) error {
			var txErr error
			sale, items, invoice, txErr = uc.createInTx(productRepo, saleRepo, invoiceRepo, business, sellerID, buyerName, buyerInfo, sorted, source)
			return txErr
		})
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return sale, items, invoice, nil
}

// createInTx valida y persiste todo con los repos atados a la transacción.
func (uc *CreateSaleUseCase) createInTx(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	invoiceRepo repository.InvoiceRepository,
	business *entity.Business,
	sellerID, buyerName, buyerInfo string,
	reqItems []dto.SaleItemRequest,
	source string,
) (*entity.Sale, []*entity.SaleItem, *entity.Invoice, error) {
	now := time.Now()
	saleID := uuid.New().String()

	total := decimal.Zero
	items := make([]*entity.SaleItem, 0, len(reqItems))

	for _, req := range reqItems {
		// Bloquea la fila del producto: la lectura de stock y el decremento
		// quedan serializados frente a ventas concurrentes.
		product, err := productRepo.GetByIDForUpdate(req.ProductID)
		if err != nil {
			return nil, nil, nil, err
		}
		if product == nil {
			return nil, nil, nil, fmt.Errorf("producto %s: %w", req.ProductID, domain.ErrNotFound)
		}
		if product.BusinessID != business.ID {
			return nil, nil, nil, fmt.Errorf("producto %s: %w", product.Name, domain.ErrProductMismatch)
		}
		if !product.Active {
			return nil, nil, nil, fmt.Errorf("producto %s inactivo: %w", product.Name, domain.ErrConflict)
		}
		if product.Stock < req.Quantity {
			return nil, nil, nil, fmt.Errorf("producto %s (stock %d, pedido %d): %w",
				product.Name, product.Stock, req.Quantity, domain.ErrInsufficientStock)
		}

		// Decremento condicional: si otra tx ganó la carrera pese al lock,
		// las filas afectadas son 0 y toda la venta se revierte.
		ok, err := productRepo.DecrementStock(product.ID, req.Quantity)
		if err != nil {
			return nil, nil, nil, err
		}
		if !ok {
			return nil, nil, nil, fmt.Errorf("producto %s: %w", product.Name, domain.ErrInsufficientStock)
		}

		// Precio siempre del producto actual, nunca del cliente.
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		items = append(items, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      saleID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
		total = total.Add(lineTotal)
	}

	sale := &entity.Sale{
		ID:          saleID,
		BusinessID:  business.ID,
		SellerID:    sellerID,
		BuyerName:   buyerName,
		BuyerInfo:   buyerInfo,
		TotalAmount: total,
		Status:      entity.SaleStatusCompleted,
		Source:      source,
		CreatedAt:   now,
	}
	if err := saleRepo.Create(sale); err != nil {
		return nil, nil, nil, err
	}
	for _, item := range items {
		if err := saleRepo.CreateItem(item); err != nil {
			return nil, nil, nil, err
		}
	}

	number, err := newInvoiceNumber()
	if err != nil {
		return nil, nil, nil, err
	}
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		SaleID:     saleID,
		BusinessID: business.ID,
		Number:     number,
		Status:     entity.InvoiceStatusPending,
		IssueDate:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := invoiceRepo.Create(invoice); err != nil {
		return nil, nil, nil, err
	}
	return sale, items, invoice, nil
}

// GetByID obtiene una venta con líneas y factura (miembro del negocio).
func (uc *CreateSaleUseCase) GetByID(userID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.gate.Authorize(userID, sale.BusinessID, authz.LevelMember); err != nil {
		return nil, err
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	invoice, err := uc.invoiceRepo.GetBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items, invoice), nil
}

// ListByBusiness lista las ventas de un negocio (miembro), sin líneas.
func (uc *CreateSaleUseCase) ListByBusiness(userID, businessID string, limit, offset int) (*dto.SaleListResponse, error) {
	if _, err := uc.gate.Authorize(userID, businessID, authz.LevelMember); err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem, invoice *entity.Invoice) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          s.ID,
		BusinessID:  s.BusinessID,
		SellerID:    s.SellerID,
		BuyerName:   s.BuyerName,
		BuyerInfo:   s.BuyerInfo,
		TotalAmount: s.TotalAmount,
		Status:      s.Status,
		Source:      s.Source,
		CreatedAt:   s.CreatedAt,
		Items:       make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	if invoice != nil {
		resp.Invoice = toInvoiceResponse(invoice)
	}
	return resp
}
