package models

// Usuario represents a row of the usuario table, mapped through gorm.
type Usuario struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Nombre   string `json:"nombre" gorm:"not null"`
	Apellido string `json:"apellido" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
}

// TableName keeps the singular table name used by the existing schema.
func (Usuario) TableName() string {
	return "usuario"
}

// NuevoUsuario is the payload accepted when creating a user.
type NuevoUsuario struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Apellido string `json:"apellido" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

// ActualizacionUsuario carries the only fields an update may change.
type ActualizacionUsuario struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Apellido string `json:"apellido" validate:"required,max=100"`
}
