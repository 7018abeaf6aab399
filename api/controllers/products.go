package controllers

import (
	"net/http"
	"net/url"

	"github.com/angelmondragon/tienda-backend/api/responses"
	"github.com/angelmondragon/tienda-backend/api/validators"
	"github.com/angelmondragon/tienda-backend/internal/media"
	"github.com/angelmondragon/tienda-backend/internal/products"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

// ProductsList godoc
// @Summary List products
// @Tags productos
// @Produce json
// @Success 200 {object} types.SuccessEnvelope{data=[]products.ProductDTO}
// @Router /productos [get]
func ProductsList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ProductsByCategory godoc
// @Summary List products of a category
// @Tags productos
// @Produce json
// @Param categoria path string true "category name"
// @Success 200 {object} types.SuccessEnvelope{data=[]products.ProductDTO}
// @Router /productos/categoria/{categoria} [get]
func ProductsByCategory(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := validators.RequireParam(r, "categoria")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		categoria, err := url.PathUnescape(raw)
		if err != nil {
			categoria = raw
		}
		list, err := svc.ListByCategory(r.Context(), categoria)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ProductsGet godoc
// @Summary Get a product
// @Tags productos
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} types.SuccessEnvelope{data=products.ProductDTO}
// @Failure 404 {object} types.ErrorEnvelope
// @Router /productos/{id} [get]
func ProductsGet(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductsCreate godoc
// @Summary Create a product
// @Description Accepts JSON or multipart/form-data; an uploaded "imagen" file wins over an "imagen" URL.
// @Tags productos
// @Accept json,mpfd
// @Produce json
// @Param body body products.ProductInput true "product fields"
// @Success 201 {object} types.SuccessEnvelope{data=products.ProductDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Router /productos [post]
func ProductsCreate(svc products.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, upload, cleanup, err := readProductInput(w, r, maxUploadBytes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer cleanup()

		created, err := svc.Create(r.Context(), input, upload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, created)
	}
}

// ProductsUpdate godoc
// @Summary Update a product
// @Description Only the fields sent are changed. Accepts JSON or multipart/form-data.
// @Tags productos
// @Accept json,mpfd
// @Produce json
// @Param id path int true "product id"
// @Param body body products.ProductInput true "fields to change"
// @Success 200 {object} types.SuccessEnvelope{data=products.ProductDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Failure 404 {object} types.ErrorEnvelope
// @Router /productos/{id} [put]
func ProductsUpdate(svc products.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, upload, cleanup, err := readProductInput(w, r, maxUploadBytes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer cleanup()

		updated, err := svc.Update(r.Context(), id, input, upload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// ProductsDelete godoc
// @Summary Delete a product
// @Tags productos
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} types.SuccessEnvelope{data=products.DeleteResult}
// @Router /productos/{id} [delete]
func ProductsDelete(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products.DeleteResult{Deleted: deleted})
	}
}

func readProductInput(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) (products.ProductInput, *media.Upload, func(), error) {
	noop := func() {}
	if !validators.IsMultipart(r) {
		var input products.ProductInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			return input, nil, noop, err
		}
		return input, nil, noop, nil
	}

	form, err := validators.ParseMultipart(w, r, products.FormFieldImage, maxUploadBytes)
	if err != nil {
		return products.ProductInput{}, nil, noop, err
	}
	cleanup := func() { form.Close(r) }

	input, err := products.ParseForm(form.Values)
	if err != nil {
		cleanup()
		return input, nil, noop, err
	}
	var upload *media.Upload
	if form.File != nil {
		upload = &media.Upload{Filename: form.Header.Filename, Content: form.File}
	}
	return input, upload, cleanup, nil
}
