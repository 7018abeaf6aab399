package controllers

import (
	"net/http"

	"github.com/angelmondragon/tienda-backend/api/responses"
	"github.com/angelmondragon/tienda-backend/api/validators"
	"github.com/angelmondragon/tienda-backend/internal/auth"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

// AuthLogin godoc
// @Summary Log in with email and password
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body auth.LoginRequest true "credentials"
// @Success 200 {object} types.SuccessEnvelope{data=auth.LoginResponse}
// @Failure 401 {object} types.ErrorEnvelope
// @Failure 429 {object} types.ErrorEnvelope
// @Router /usuarios/login [post]
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		responses.WriteSuccess(w, result)
	}
}
