package controllers

import (
	"net/http"

	"github.com/angelmondragon/tienda-backend/api/responses"
	"github.com/angelmondragon/tienda-backend/api/validators"
	"github.com/angelmondragon/tienda-backend/internal/categories"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

// CategoriesList godoc
// @Summary List categories
// @Tags categorias
// @Produce json
// @Success 200 {object} types.SuccessEnvelope{data=[]categories.CategoryDTO}
// @Router /categorias [get]
func CategoriesList(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// CategoriesNames godoc
// @Summary List category names
// @Tags categorias
// @Produce json
// @Success 200 {object} types.SuccessEnvelope{data=[]string}
// @Router /categorias/nombres [get]
func CategoriesNames(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.ListNames(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, names)
	}
}

// CategoriesCreate godoc
// @Summary Create a category
// @Tags categorias
// @Accept json
// @Produce json
// @Param body body categories.CategoryRequest true "category"
// @Success 201 {object} types.SuccessEnvelope{data=categories.CategoryDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Failure 409 {object} types.ErrorEnvelope
// @Router /categorias [post]
func CategoriesCreate(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body categories.CategoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), body.Nombre)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, created)
	}
}

// CategoriesSeed godoc
// @Summary Insert the default categories
// @Description Idempotent; returns every category name afterwards.
// @Tags categorias
// @Produce json
// @Success 200 {object} types.SuccessEnvelope{data=[]string}
// @Router /categorias/seed [post]
func CategoriesSeed(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.SeedDefaults(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, names)
	}
}

// CategoriesUpdate godoc
// @Summary Rename a category
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path int true "category id"
// @Param body body categories.CategoryRequest true "category"
// @Success 200 {object} types.SuccessEnvelope{data=categories.CategoryDTO}
// @Failure 404 {object} types.ErrorEnvelope
// @Failure 409 {object} types.ErrorEnvelope
// @Router /categorias/{id} [put]
func CategoriesUpdate(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body categories.CategoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Update(r.Context(), id, body.Nombre)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// CategoriesDelete godoc
// @Summary Delete a category
// @Description Products in the category get a NULL categoria before the row is removed.
// @Tags categorias
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} types.SuccessEnvelope{data=categories.DeleteResult}
// @Failure 404 {object} types.ErrorEnvelope
// @Failure 503 {object} types.ErrorEnvelope
// @Router /categorias/{id} [delete]
func CategoriesDelete(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
