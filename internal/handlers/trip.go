package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"TravelRecord/internal/config"
	"TravelRecord/internal/middleware"
	"TravelRecord/internal/model"
	"TravelRecord/internal/service"
)

// Лимит тела bulk-запроса.
const maxBulkBody = 10 << 20

// TripHandler обрабатывает вставку, выборку и удаление записей дневника.
type TripHandler struct {
	TripService *service.TripService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewTripHandler(tripService *service.TripService, logger *zap.SugaredLogger, cfg *config.Config) *TripHandler {
	return &TripHandler{TripService: tripService, Logger: logger, Config: cfg}
}

// identity достаёт владельца из контекста; false — аноним.
func identity(r *http.Request) (int64, string, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, "", false
	}
	email, _ := middleware.GetEmailFromContext(r.Context())
	return userID, email, true
}

type tripFields struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	City    string `json:"city"`
	Country string `json:"country"`
	Note    string `json:"note"`
}

// AddOne сохраняет одну запись.
func (h *TripHandler) AddOne(w http.ResponseWriter, r *http.Request) {
	userID, email, ok := identity(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req tripFields
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AddOne: invalid request body", "error", err)
		writeErr(w, http.StatusBadRequest, "invalid request")
		return
	}

	trip := model.Trip{Date: req.Date, Title: req.Title, City: req.City, Country: req.Country, Note: req.Note}
	if _, err := h.TripService.AddOne(r.Context(), userID, email, trip); err != nil {
		h.Logger.Errorw("AddOne: service error", "user_id", userID, "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Data added"})
}

// Bulk принимает либо JSON-тело (массив или одиночный объект), либо
// multipart-форму с полем file (.csv или .json).
func (h *TripHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	userID, email, ok := identity(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBulkBody)

	var (
		inserted int
		err      error
	)
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		var data []byte
		data, err = io.ReadAll(r.Body)
		if err == nil {
			inserted, err = h.TripService.BulkJSON(r.Context(), userID, email, data)
		}
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err = r.ParseMultipartForm(maxBulkBody); err != nil {
			h.Logger.Warnw("Bulk: invalid multipart form", "error", err)
			writeErr(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		file, header, ferr := r.FormFile("file")
		if ferr != nil {
			writeErr(w, http.StatusBadRequest, "No data")
			return
		}
		defer file.Close()
		var data []byte
		data, err = io.ReadAll(file)
		if err == nil {
			inserted, err = h.TripService.BulkFile(r.Context(), userID, email, header.Filename, data)
		}
	default:
		writeErr(w, http.StatusBadRequest, "No data")
		return
	}

	switch {
	case errors.Is(err, service.ErrUnsupportedFile):
		writeErr(w, http.StatusBadRequest, "Unsupported file type")
		return
	case err != nil:
		// как и оригинал, отдаём текст ошибки разбора клиенту
		h.Logger.Warnw("Bulk: failed", "user_id", userID, "error", err)
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "inserted": inserted})
}

// ListAll отдаёт голый JSON-массив записей пользователя.
func (h *TripHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	trips, err := h.TripService.ListAll(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("ListAll: service error", "user_id", userID, "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	if trips == nil {
		trips = []model.Trip{}
	}
	writeJSON(w, http.StatusOK, trips)
}

type deleteManyRequest struct {
	IDs []string `json:"ids"`
}

// DeleteMany удаляет записи пользователя по списку идентификаторов.
func (h *TripHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req deleteManyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("DeleteMany: invalid request body", "error", err)
		writeErr(w, http.StatusBadRequest, "invalid request")
		return
	}

	n, err := h.TripService.DeleteMany(r.Context(), userID, req.IDs)
	if err != nil {
		h.Logger.Errorw("DeleteMany: service error", "user_id", userID, "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": n})
}
