package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleGestionnaire = "gestionnaire"
	RoleEmploye      = "employe"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleGestionnaire, RoleEmploye:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Role         string // admin, gestionnaire, employe
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
