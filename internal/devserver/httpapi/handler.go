// Package httpapi exposes the dev server's users service over HTTP+JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/userdash/internal/common"
	"github.com/dmitrijs2005/userdash/internal/devserver/users"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

// UserService is what the handlers need from users.Service.
type UserService interface {
	Register(ctx context.Context, p users.Profile, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(token string) (string, error)
	Profile(ctx context.Context, userID string) (users.Profile, error)
	UpdateProfile(ctx context.Context, userID string, p users.Profile) (users.Profile, error)
}

type ctxKey string

const userIDKey ctxKey = "userID"

type Handler struct {
	users  UserService
	logger logging.Logger
}

func NewHandler(us UserService, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{users: us, logger: logger}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.bearerAuth)
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.updateProfile)
		})
	})
	return r
}

// bearerAuth puts the authenticated user ID into the request context.
func (h *Handler) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			respondWithError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := h.users.Authenticate(strings.TrimSpace(token))
		if err != nil {
			h.logger.Debug(r.Context(), "token rejected", "error", err)
			respondWithError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.users.Register(r.Context(), req.profile(), req.Password)
	switch {
	case errors.Is(err, users.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, users.ErrExists):
		respondWithError(w, http.StatusConflict, "user already exists")
		return
	case err != nil:
		h.internalError(w, r, "register", err)
		return
	}

	h.logger.Info(r.Context(), "user registered", "email", req.Email)
	respondWithJSON(w, http.StatusCreated, tokenResponse{Token: token})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, users.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "invalid email or password")
		return
	case err != nil:
		h.internalError(w, r, "login", err)
		return
	}
	respondWithJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.users.Profile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.profileError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profileResponse{User: toDTO(p)})
}

// updateProfile takes the full profile object. The email is immutable and
// silently kept.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req userDTO
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.users.UpdateProfile(r.Context(), userIDFrom(r.Context()), req.profile())
	if err != nil {
		h.profileError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profileResponse{User: toDTO(p)})
}

// profileError treats a valid token for a vanished user as unauthorized.
func (h *Handler) profileError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, users.ErrNotFound) {
		respondWithError(w, http.StatusUnauthorized, "unknown user")
		return
	}
	h.internalError(w, r, "profile", err)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error(r.Context(), op+" failed", "error", err)
	respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
