package entity

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User usuario del sistema. Fuera del núcleo contable; se conserva porque la
// API expone login y cambio de contraseña.
type User struct {
	ID           string // UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Status       string // active | inactive
}
