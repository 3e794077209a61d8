package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"TravelRecord/internal/config"
	"TravelRecord/internal/handlers"
	"TravelRecord/internal/middleware"
	"TravelRecord/internal/model"
	"TravelRecord/internal/repo"
	"TravelRecord/internal/service"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockTripRepo struct{ mock.Mock }

func (m *mockTripRepo) InsertOne(ctx context.Context, trip *model.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}
func (m *mockTripRepo) InsertMany(ctx context.Context, trips []model.Trip) error {
	args := m.Called(ctx, trips)
	return args.Error(0)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID int64) ([]model.Trip, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Trip); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTripRepo) DeleteByIDs(ctx context.Context, userID int64, ids []string) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.TripRepository = (*mockTripRepo)(nil)

const testSecret = "test-secret"

// --- Helpers ---
func newTestRouter(t *testing.T, ur repo.UserRepository, tr repo.TripRepository) http.Handler {
	t.Helper()
	if ur == nil {
		ur = &mockUserRepo{}
	}
	if tr == nil {
		tr = &mockTripRepo{}
	}
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	tripSvc := service.NewTripService(tr, logger)

	h := handlers.NewHandler(userSvc, tripSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, email string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, email, testSecret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
