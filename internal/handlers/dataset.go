package handlers

import (
	"io"
	"net/http"
)

// GetDataset returns the raw published dataset
// @Summary Get Dataset
// @Tags Dataset
// @Produce json
// @Success 200 {object} models.Dataset "Full dataset"
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /data [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	raw := h.store.Raw()
	if raw == nil {
		h.errorResponse(w, http.StatusNotFound, "No dataset loaded")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// UploadDataset replaces the published dataset
// @Summary Upload Dataset
// @Description Validates and publishes a new dataset, then schedules a background badge rescan
// @Tags Dataset
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Upload accepted"
// @Failure 400 {object} map[string]string "Invalid dataset"
// @Router /data [post]
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}
	if len(raw) > MaxBodySize {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Dataset too large")
		return
	}

	version, err := h.store.Replace(raw)
	if err != nil {
		h.logger.Warnw("dataset upload rejected", "error", err)
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.snapshots != nil {
		if err := h.snapshots.Save(ctx, version, raw); err != nil {
			h.logger.Errorw("failed to persist dataset snapshot", "version", version, "error", err)
		}
	}

	queued := h.rescan.Enqueue(version)

	ds, _ := h.store.Snapshot()
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"version":       version,
		"players":       len(ds.Players),
		"matches":       len(ds.Matches),
		"rescan_queued": queued,
	})
}
