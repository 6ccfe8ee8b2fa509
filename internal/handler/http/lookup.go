// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// maxImportFileSize bounds the in-memory part of an uploaded XLSX workbook.
const maxImportFileSize = 10 << 20

// lookupNameRequest is the body of brand and transmission create/update calls.
type lookupNameRequest struct {
	Name string `json:"name"`
}

// engineVolumeRequest is the body of engine volume create/update calls.
type engineVolumeRequest struct {
	Name float64 `json:"name"`
}

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body lookupNameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	created, err := h.services.LookupService.CreateBrand(ctx, body.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBrand").Msg("brand creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusCreated, Data: created}, http.StatusCreated)
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	brandID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid brand id")
		writeError(w, http.StatusBadRequest, "invalid brand id")
		return
	}

	brand, err := h.services.LookupService.GetBrand(ctx, brandID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBrand").Msg("brand lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: brand}, http.StatusOK)
}

func (h *Handler) getAllBrands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	brands, err := h.services.LookupService.GetAllBrands(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllBrands").Msg("brand listing failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: brands}, http.StatusOK)
}

func (h *Handler) updateBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	brandID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid brand id")
		writeError(w, http.StatusBadRequest, "invalid brand id")
		return
	}

	var body lookupNameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.LookupService.UpdateBrand(ctx, brandID, body.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateBrand").Msg("brand update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: updated}, http.StatusOK)
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	brandID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid brand id")
		writeError(w, http.StatusBadRequest, "invalid brand id")
		return
	}

	if err := h.services.LookupService.DeleteBrand(ctx, brandID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBrand").Msg("brand deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Message: "brand deleted"}, http.StatusOK)
}

func (h *Handler) uploadBrands(w http.ResponseWriter, r *http.Request) {
	h.uploadLookup(w, r, h.services.LookupService.ImportBrands)
}

func (h *Handler) createEngineVolume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body engineVolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	created, err := h.services.LookupService.CreateEngineVolume(ctx, body.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEngineVolume").Msg("engine volume creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusCreated, Data: created}, http.StatusCreated)
}

func (h *Handler) getEngineVolume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	volumeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid engine volume id")
		writeError(w, http.StatusBadRequest, "invalid engine volume id")
		return
	}

	volume, err := h.services.LookupService.GetEngineVolume(ctx, volumeID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEngineVolume").Msg("engine volume lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: volume}, http.StatusOK)
}

func (h *Handler) getAllEngineVolumes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	volumes, err := h.services.LookupService.GetAllEngineVolumes(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllEngineVolumes").Msg("engine volume listing failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: volumes}, http.StatusOK)
}

func (h *Handler) updateEngineVolume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	volumeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid engine volume id")
		writeError(w, http.StatusBadRequest, "invalid engine volume id")
		return
	}

	var body engineVolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.LookupService.UpdateEngineVolume(ctx, volumeID, body.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEngineVolume").Msg("engine volume update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: updated}, http.StatusOK)
}

func (h *Handler) deleteEngineVolume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	volumeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid engine volume id")
		writeError(w, http.StatusBadRequest, "invalid engine volume id")
		return
	}

	if err := h.services.LookupService.DeleteEngineVolume(ctx, volumeID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEngineVolume").Msg("engine volume deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Message: "engine volume deleted"}, http.StatusOK)
}

func (h *Handler) uploadEngineVolumes(w http.ResponseWriter, r *http.Request) {
	h.uploadLookup(w, r, h.services.LookupService.ImportEngineVolumes)
}

func (h *Handler) createTransmissionType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body lookupNameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	created, err := h.services.LookupService.CreateTransmissionType(ctx, body.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTransmissionType").Msg("transmission type creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusCreated, Data: created}, http.StatusCreated)
}

func (h *Handler) getTransmissionType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	typeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid transmission type id")
		writeError(w, http.StatusBadRequest, "invalid transmission type id")
		return
	}

	transmissionType, err := h.services.LookupService.GetTransmissionType(ctx, typeID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTransmissionType").Msg("transmission type lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: transmissionType}, http.StatusOK)
}

func (h *Handler) getAllTransmissionTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	types, err := h.services.LookupService.GetAllTransmissionTypes(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllTransmissionTypes").Msg("transmission type listing failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: types}, http.StatusOK)
}

func (h *Handler) updateTransmissionType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	typeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid transmission type id")
		writeError(w, http.StatusBadRequest, "invalid transmission type id")
		return
	}

	var body lookupNameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.LookupService.UpdateTransmissionType(ctx, typeID, body.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTransmissionType").Msg("transmission type update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Data: updated}, http.StatusOK)
}

func (h *Handler) deleteTransmissionType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	typeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid transmission type id")
		writeError(w, http.StatusBadRequest, "invalid transmission type id")
		return
	}

	if err := h.services.LookupService.DeleteTransmissionType(ctx, typeID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTransmissionType").Msg("transmission type deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Code: http.StatusOK, Message: "transmission type deleted"}, http.StatusOK)
}

func (h *Handler) uploadTransmissionTypes(w http.ResponseWriter, r *http.Request) {
	h.uploadLookup(w, r, h.services.LookupService.ImportTransmissionTypes)
}
