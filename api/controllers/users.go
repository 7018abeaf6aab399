package controllers

import (
	"net/http"

	"github.com/angelmondragon/tienda-backend/api/responses"
	"github.com/angelmondragon/tienda-backend/api/validators"
	"github.com/angelmondragon/tienda-backend/internal/users"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

// UsersRegister godoc
// @Summary Register a user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body users.RegisterRequest true "user fields"
// @Success 201 {object} types.SuccessEnvelope{data=users.UserDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Failure 409 {object} types.ErrorEnvelope
// @Router /usuarios/register [post]
func UsersRegister(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body users.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, created)
	}
}

// UsersList godoc
// @Summary List users
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} types.SuccessEnvelope{data=[]users.UserDTO}
// @Failure 401 {object} types.ErrorEnvelope
// @Router /usuarios [get]
func UsersList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// UsersGet godoc
// @Summary Get a user by id
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} types.SuccessEnvelope{data=users.UserDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Failure 401 {object} types.ErrorEnvelope
// @Failure 404 {object} types.ErrorEnvelope
// @Router /usuarios/{id} [get]
func UsersGet(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		user, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}
