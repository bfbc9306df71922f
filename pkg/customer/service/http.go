package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-claim-issuer/pkg/app/errors"
	apphttp "github.com/chainsafe/kyc-claim-issuer/pkg/app/http"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
	"github.com/chainsafe/kyc-claim-issuer/pkg/reconciler"
)

const maxBodyBytes = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type outcomeResponse struct {
	Outcome *reconciler.Outcome `json:"outcome"`
}

// RegisterRoutes registers the customer info endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/info/{id}", apphttp.HandleError(h.getInfo))
	r.Put("/info/{id}", apphttp.HandleError(h.submitNewInfo))
	r.Patch("/info/{id}", apphttp.HandleError(h.submitPatch))
	r.Delete("/info/{id}/claim", apphttp.HandleError(h.revokeClaim))
}

func (h *HTTP) getInfo(w http.ResponseWriter, r *http.Request) error {
	rec, err := h.service.GetInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, rec.Serialize())
	return nil
}

func (h *HTTP) submitNewInfo(w http.ResponseWriter, r *http.Request) error {
	p, err := decodePayload(r)
	if err != nil {
		return err
	}
	out, err := h.service.SubmitNewInfo(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &outcomeResponse{Outcome: out})
	return nil
}

func (h *HTTP) submitPatch(w http.ResponseWriter, r *http.Request) error {
	p, err := decodePayload(r)
	if err != nil {
		return err
	}
	out, err := h.service.SubmitPatch(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &outcomeResponse{Outcome: out})
	return nil
}

func (h *HTTP) revokeClaim(w http.ResponseWriter, r *http.Request) error {
	out, err := h.service.RevokeClaim(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &outcomeResponse{Outcome: out})
	return nil
}

// decodePayload reads a strict customer payload. Unknown fields and
// trailing data are rejected.
func decodePayload(r *http.Request) (customer.Payload, error) {
	var p customer.Payload

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return p, apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) > maxBodyBytes {
		return p, apperrors.BadRequestError(nil, "request body too large")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, apperrors.BadRequestError(err, "invalid JSON")
	}
	if dec.More() {
		return p, apperrors.BadRequestError(nil, "invalid JSON")
	}
	return p, nil
}
