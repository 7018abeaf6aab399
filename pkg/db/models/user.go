package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is a registered customer or staff member.
type User struct {
	ID               int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre           *string        `gorm:"column:nombre"`
	Apellidos        *string        `gorm:"column:apellidos"`
	Run              *string        `gorm:"column:run"`
	Email            string         `gorm:"column:email;not null;uniqueIndex:usuarios_email_key"`
	Password         string         `gorm:"column:password;not null"`
	FechaNacimiento  *time.Time     `gorm:"column:fecha_nacimiento;type:date"`
	TipoUsuario      string         `gorm:"column:tipo_usuario;not null;default:cliente"`
	Region           *string        `gorm:"column:region"`
	Comuna           *string        `gorm:"column:comuna"`
	Direccion        *string        `gorm:"column:direccion"`
	HistorialCompras datatypes.JSON `gorm:"column:historial_compras;not null;default:'[]'"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "usuarios" }

const DefaultUserType = "cliente"
