package entity

import "time"

// Categorías válidas de negocio (enumeración fija del servidor RP).
const (
	CategoryRestaurant = "restaurant"
	CategoryMechanic   = "mechanic"
	CategoryDealership = "dealership"
	CategoryBar        = "bar"
	CategoryShop       = "shop"
	CategoryOther      = "other"
)

// ValidCategory verifica que la categoría esté en la enumeración.
func ValidCategory(c string) bool {
	switch c {
	case CategoryRestaurant, CategoryMechanic, CategoryDealership, CategoryBar, CategoryShop, CategoryOther:
		return true
	}
	return false
}

// Business representa un negocio del servidor RP. El dueño es inmutable tras la creación.
// APIKey es el secreto compartido que presenta el servidor del juego en /game/sales;
// nil hasta que la creación del negocio emite una.
type Business struct {
	ID        string
	OwnerID   string
	Name      string
	Category  string // ver constantes Category*
	APIKey    *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles de membresía en un negocio. La distinción manager/employee es decorativa
// en esta capa: ambos pasan el gate de miembro.
const (
	EmployeeRoleManager  = "manager"
	EmployeeRoleEmployee = "employee"
)

// BusinessEmployee membresía de un usuario en un negocio ajeno.
// Constraint único (business_id, user_id): a lo sumo una membresía por par.
type BusinessEmployee struct {
	ID         string
	BusinessID string
	UserID     string
	Role       string // manager, employee
	CreatedAt  time.Time
}
