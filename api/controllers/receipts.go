package controllers

import (
	"net/http"

	"github.com/angelmondragon/tienda-backend/api/responses"
	"github.com/angelmondragon/tienda-backend/api/validators"
	"github.com/angelmondragon/tienda-backend/internal/receipts"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
)

// ReceiptsList godoc
// @Summary List receipts
// @Tags boletas
// @Produce json
// @Success 200 {object} types.SuccessEnvelope{data=[]receipts.ReceiptDTO}
// @Router /boletas [get]
// @Router /detalle [get]
func ReceiptsList(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ReceiptsGetByNumber godoc
// @Summary Get a receipt by purchase number
// @Tags boletas
// @Produce json
// @Param numeroCompra path string true "purchase number"
// @Success 200 {object} types.SuccessEnvelope{data=receipts.ReceiptDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Failure 404 {object} types.ErrorEnvelope
// @Router /boletas/numero/{numeroCompra} [get]
// @Router /detalle/{numeroCompra} [get]
func ReceiptsGetByNumber(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		numero, err := validators.RequireParam(r, "numeroCompra")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		receipt, err := svc.GetByPurchaseNumber(r.Context(), numero)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, receipt)
	}
}

// ReceiptsListByUser godoc
// @Summary List the receipts of a user
// @Tags boletas
// @Produce json
// @Param usuarioId path string true "user id"
// @Success 200 {object} types.SuccessEnvelope{data=[]receipts.ReceiptDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Router /boletas/{usuarioId} [get]
func ReceiptsListByUser(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := validators.RequireParam(r, "usuarioId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ReceiptsCreate godoc
// @Summary Create a receipt
// @Description comprador and productos may be JSON values or JSON-encoded strings.
// @Tags boletas
// @Accept json
// @Produce json
// @Param body body receipts.CreateReceiptRequest true "receipt"
// @Success 201 {object} types.SuccessEnvelope{data=receipts.ReceiptDTO}
// @Failure 400 {object} types.ErrorEnvelope
// @Router /boletas [post]
func ReceiptsCreate(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body receipts.CreateReceiptRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, created)
	}
}

// ReceiptsDeleteByUser godoc
// @Summary Delete every receipt of a user
// @Tags boletas
// @Produce json
// @Param usuarioId path string true "user id"
// @Success 200 {object} types.SuccessEnvelope{data=receipts.DeleteResult}
// @Router /boletas/{usuarioId} [delete]
func ReceiptsDeleteByUser(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := validators.RequireParam(r, "usuarioId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.DeleteByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
