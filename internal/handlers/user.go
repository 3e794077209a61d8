package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"TravelRecord/internal/config"
	"TravelRecord/internal/middleware"
	"TravelRecord/internal/service"
)

// UserHandler обрабатывает регистрацию, вход и сессию.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register регистрирует пользователя. Сессию не открывает — как в оригинале,
// после регистрации пользователь логинится отдельно.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		writeErr(w, http.StatusBadRequest, "Email and password are required")
		return
	case errors.Is(err, service.ErrEmailTaken):
		writeErr(w, http.StatusBadRequest, "Email already registered")
		return
	case err != nil:
		h.Logger.Errorw("Register: service error", "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "email": user.Email})
}

// Login проверяет пароль и выставляет сессионную cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.UserService.Authenticate(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		writeErr(w, http.StatusBadRequest, "Email and password are required")
		return
	case errors.Is(err, service.ErrUserNotFound):
		writeErr(w, http.StatusBadRequest, "User not found")
		return
	case errors.Is(err, service.ErrWrongPassword):
		writeErr(w, http.StatusBadRequest, "Wrong password")
		return
	case err != nil:
		h.Logger.Errorw("Login: service error", "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, user.Email, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: set cookie", "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "email": user.Email})
}

// Logout сбрасывает сессионную cookie.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Me возвращает текущего пользователя сессии. Всегда 200:
// фронтенд пробует этот эндпоинт при старте и для анонима ждёт {"ok":false}.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "email": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "email": email})
}
