package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/vebal-sync/pkg/app/errors"
	apphttp "github.com/chainsafe/vebal-sync/pkg/app/http"
	"github.com/chainsafe/vebal-sync/pkg/auth"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the sync endpoints on r. authn guards the
// endpoint that sends transactions.
func RegisterRoutes(r chi.Router, service Service, authn func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/accounts/{account}", func(r chi.Router) {
		r.Get("/sync", apphttp.HandleError(logger, h.getSyncStatus))
		r.With(authn).Post("/sync/{network}", apphttp.HandleError(logger, h.syncNetwork))
		r.Get("/submissions", apphttp.HandleError(logger, h.listSubmissions))
	})
	r.Get("/submissions/{id}", apphttp.HandleError(logger, h.getSubmission))
}

func (h *HTTP) getSyncStatus(w http.ResponseWriter, r *http.Request) error {
	account, err := auth.ParseAddress(chi.URLParam(r, "account"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid account address")
	}

	status, err := h.service.GetSyncStatus(r.Context(), account)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, status)
	return nil
}

func (h *HTTP) syncNetwork(w http.ResponseWriter, r *http.Request) error {
	account, err := auth.ParseAddress(chi.URLParam(r, "account"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid account address")
	}
	n, err := network.Parse(chi.URLParam(r, "network"))
	if err != nil {
		return apperrors.BadRequestError(err, "unknown network")
	}

	sub, err := h.service.SyncNetwork(r.Context(), account, n)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusAccepted, sub)
	return nil
}

func (h *HTTP) listSubmissions(w http.ResponseWriter, r *http.Request) error {
	account, err := auth.ParseAddress(chi.URLParam(r, "account"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid account address")
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid limit")
		}
	}

	subs, err := h.service.ListSubmissions(r.Context(), account, limit)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"submissions": subs})
	return nil
}

func (h *HTTP) getSubmission(w http.ResponseWriter, r *http.Request) error {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid submission id")
	}

	sub, err := h.service.GetSubmission(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, sub)
	return nil
}
