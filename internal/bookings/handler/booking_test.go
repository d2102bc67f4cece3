package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "fleetbook/pkg/errors"
	"fleetbook/pkg/logger"
	"fleetbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	submitFunc  func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	listAllFunc func(ctx context.Context) ([]*model.Booking, error)
}

func (m *mockBookingService) Submit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockBookingService) ListAll(ctx context.Context) ([]*model.Booking, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func newTestRouter(service *mockBookingService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})

	router := httprouter.New()
	NewBookingHandler(service, log).RegisterRoutes(router)
	return router
}

func validPayload() string {
	return `{
		"first_name": "Asha",
		"last_name": "Rao",
		"wheels": 4,
		"vehicle_type_id": "suv",
		"vehicle_id": "creta",
		"start_date": "2025-06-10",
		"end_date": "2025-06-15"
	}`
}

func TestCreate_Success(t *testing.T) {
	service := &mockBookingService{
		submitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return &model.Booking{
				ID:            "b-1",
				FirstName:     req.FirstName,
				LastName:      req.LastName,
				Wheels:        req.Wheels,
				VehicleTypeID: req.VehicleTypeID,
				VehicleID:     req.VehicleID,
				StartDate:     req.StartDate,
				EndDate:       req.EndDate,
				CreatedAt:     time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var booking model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if booking.ID != "b-1" {
		t.Errorf("expected booking id b-1, got %q", booking.ID)
	}
	if booking.StartDate.String() != "2025-06-10" {
		t.Errorf("expected start date 2025-06-10, got %s", booking.StartDate)
	}
}

func TestCreate_OverlapRejection(t *testing.T) {
	service := &mockBookingService{
		submitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Overlap(
				"Vehicle is already booked for the selected dates. Existing booking from 2025-06-10 to 2025-06-15")
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if !strings.Contains(body.Detail, "already booked") {
		t.Errorf("expected overlap detail, got %q", body.Detail)
	}
	if !strings.Contains(body.Detail, "2025-06-10") || !strings.Contains(body.Detail, "2025-06-15") {
		t.Errorf("expected existing booking dates in detail, got %q", body.Detail)
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	called := false
	service := &mockBookingService{
		submitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			called = true
			return nil, nil
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"first_name": `))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for malformed body")
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Detail != "Invalid request body" {
		t.Errorf("unexpected detail: %q", body.Detail)
	}
}

func TestCreate_ValidationRejection(t *testing.T) {
	service := &mockBookingService{
		submitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Validation("Wheels must be one of: 2 4", nil)
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreate_InternalErrorMasked(t *testing.T) {
	service := &mockBookingService{
		submitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Internal("Failed to create booking: primary stepped down", nil)
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "stepped down") {
		t.Errorf("internal detail leaked to client: %s", rec.Body.String())
	}
}

func TestGetAll(t *testing.T) {
	start, _ := model.ParseDate("2025-06-10")
	end, _ := model.ParseDate("2025-06-15")
	service := &mockBookingService{
		listAllFunc: func(ctx context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "b-1", VehicleID: "creta", StartDate: start, EndDate: end},
			}, nil
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var bookings []*model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != "b-1" {
		t.Errorf("unexpected bookings: %+v", bookings)
	}
}

func TestGetAll_EmptyIsArray(t *testing.T) {
	service := &mockBookingService{
		listAllFunc: func(ctx context.Context) ([]*model.Booking, error) {
			return nil, nil
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %q", rec.Body.String())
	}
}
