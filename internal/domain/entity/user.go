package entity

import "time"

// Roles informativos para User. No otorgan capacidades: la autorización real
// se decide por propiedad o membresía sobre cada negocio.
const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User espejo local de la identidad verificada por el proveedor externo.
// El ID es el identificador opaco que entrega el proveedor (no un UUID propio).
// Se crea en el primer login y se refresca (email, nombre, avatar) en cada login.
type User struct {
	ID        string
	Email     string
	Name      string
	Avatar    string
	Role      string // owner, employee, admin (solo informativo)
	CreatedAt time.Time
	UpdatedAt time.Time
}
