package service

import (
	"context"
	"fmt"
	"time"

	"fleetbook/internal/bookings/events"
	"fleetbook/internal/bookings/repository"
	"fleetbook/internal/bookings/validator"
	"fleetbook/pkg/config"
	apperrors "fleetbook/pkg/errors"
	"fleetbook/pkg/model"
	"fleetbook/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const lockTTL = 10 * time.Second

type BookingService interface {
	Submit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	ListAll(ctx context.Context) ([]*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	validator *validator.BookingRequestValidator
	events    events.Publisher
	cfg       *config.Config

	// now is the admission reference clock; "today" is its UTC calendar
	// date, computed once per submission.
	now func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	requestValidator *validator.BookingRequestValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: requestValidator,
		events:    publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Submit decides whether the requested date range may be accepted against
// the existing reservations for the vehicle. Checks run in a fixed order:
// overlap, then range validity, then past-date. A rejection persists
// nothing; acceptance persists exactly one booking.
//
// The check-then-insert sequence is serialized per vehicle by an advisory
// lock, so two racing submissions for the same vehicle cannot both pass
// the overlap check.
func (s *bookingService) Submit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.sanitize(req)
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking request validation failed", "error", err)
		return nil, apperrors.Validation("Invalid booking request", map[string]any{"error": err.Error()})
	}

	lockID, err := s.acquireVehicleLock(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseVehicleLock(context.WithoutCancel(ctx), lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release vehicle lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	today := model.DateOf(s.now())

	var booking *model.Booking
	err = s.repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindOverlapping(txCtx, req.VehicleID, req.StartDate, req.EndDate)
		if err != nil {
			return apperrors.Internal("Failed to check existing bookings", err)
		}
		if existing != nil {
			return apperrors.Overlap(fmt.Sprintf(
				"Vehicle is already booked for the selected dates. Existing booking from %s to %s",
				existing.StartDate, existing.EndDate,
			))
		}

		if !req.StartDate.Before(req.EndDate) {
			return apperrors.InvalidRange("End date must be after start date")
		}

		if req.StartDate.Before(today) {
			return apperrors.PastDate("Start date cannot be in the past")
		}

		booking = &model.Booking{
			ID:            uuid.NewString(),
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Wheels:        req.Wheels,
			VehicleTypeID: req.VehicleTypeID,
			VehicleID:     req.VehicleID,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
		}
		if err := s.repo.Create(txCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.AsAppError(err).Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to create booking", "vehicle_id", req.VehicleID, "error", err)
		}
		return nil, err
	}

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"vehicle_id", booking.VehicleID,
		"start_date", booking.StartDate.String(),
		"end_date", booking.EndDate.String(),
	)
	s.publishCreated(ctx, booking)

	return booking, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.FirstName = sanitizer.SanitizeName(req.FirstName)
	req.LastName = sanitizer.SanitizeName(req.LastName)
}

// acquireVehicleLock serializes admission per vehicle. Returns the lock ID,
// or a conflict when another submission for the same vehicle is in flight.
func (s *bookingService) acquireVehicleLock(ctx context.Context, vehicleID string) (string, error) {
	lockID := "vehicle_lock_" + vehicleID

	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: s.now().UTC().Add(lockTTL),
	}

	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.LockHeld("This vehicle is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire vehicle lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseVehicleLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking) {
	if err := s.events.BookingCreated(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking.created event",
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
