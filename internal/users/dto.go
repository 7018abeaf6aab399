package users

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/types"
	"gorm.io/datatypes"
)

const birthDateLayout = "2006-01-02"

// RegisterRequest is the body accepted by POST /usuarios/register.
type RegisterRequest struct {
	Nombre           string             `json:"nombre"`
	Apellidos        string             `json:"apellidos"`
	Run              string             `json:"run"`
	Email            string             `json:"email" validate:"required,email"`
	Password         string             `json:"password" validate:"required"`
	FechaNacimiento  string             `json:"fecha_nacimiento"`
	TipoUsuario      string             `json:"tipo_usuario"`
	Region           string             `json:"region"`
	Comuna           string             `json:"comuna"`
	Direccion        string             `json:"direccion"`
	HistorialCompras types.EmbeddedJSON `json:"historial_compras" swaggertype:"array,object"`
}

// UserDTO is the transport shape; it never carries the password.
type UserDTO struct {
	ID               int64           `json:"id"`
	Nombre           *string         `json:"nombre"`
	Apellidos        *string         `json:"apellidos"`
	Run              *string         `json:"run"`
	Email            string          `json:"email"`
	FechaNacimiento  *string         `json:"fecha_nacimiento"`
	TipoUsuario      string          `json:"tipo_usuario"`
	Region           *string         `json:"region"`
	Comuna           *string         `json:"comuna"`
	Direccion        *string         `json:"direccion"`
	HistorialCompras json.RawMessage `json:"historial_compras" swaggertype:"array,object"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// FromModel strips credentials from a persisted user.
func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	history := json.RawMessage(u.HistorialCompras)
	if len(history) == 0 {
		history = json.RawMessage("[]")
	}
	var birth *string
	if u.FechaNacimiento != nil {
		formatted := u.FechaNacimiento.Format(birthDateLayout)
		birth = &formatted
	}
	return &UserDTO{
		ID:               u.ID,
		Nombre:           u.Nombre,
		Apellidos:        u.Apellidos,
		Run:              u.Run,
		Email:            u.Email,
		FechaNacimiento:  birth,
		TipoUsuario:      u.TipoUsuario,
		Region:           u.Region,
		Comuna:           u.Comuna,
		Direccion:        u.Direccion,
		HistorialCompras: history,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// FromModels converts a slice of users.
func FromModels(list []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// toModel normalizes the request; passwordHash is stored as given.
func (r RegisterRequest) toModel(passwordHash string) (*models.User, error) {
	email := NormalizeEmail(r.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	user := &models.User{
		Nombre:      optional(r.Nombre),
		Apellidos:   optional(r.Apellidos),
		Run:         optional(r.Run),
		Email:       email,
		Password:    passwordHash,
		TipoUsuario: models.DefaultUserType,
		Region:      optional(r.Region),
		Comuna:      optional(r.Comuna),
		Direccion:   optional(r.Direccion),
	}
	if tipo := optional(r.TipoUsuario); tipo != nil {
		user.TipoUsuario = *tipo
	}

	if birth := optional(r.FechaNacimiento); birth != nil {
		parsed, err := time.Parse(birthDateLayout, *birth)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "fecha_nacimiento must be YYYY-MM-DD")
		}
		user.FechaNacimiento = &parsed
	}

	history, err := normalizeHistory(r.HistorialCompras)
	if err != nil {
		return nil, err
	}
	user.HistorialCompras = history
	return user, nil
}

func normalizeHistory(raw types.EmbeddedJSON) (datatypes.JSON, error) {
	if raw.IsZero() {
		return datatypes.JSON("[]"), nil
	}
	var entries []any
	if err := raw.Decode(&entries); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "historial_compras must be a JSON array")
	}
	if entries == nil {
		entries = []any{}
	}
	encoded, err := json.Marshal(entries)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode historial_compras")
	}
	return datatypes.JSON(encoded), nil
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
