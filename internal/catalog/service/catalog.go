package service

import (
	"context"
	"time"

	"fleetbook/internal/catalog/repository"
	"fleetbook/pkg/config"
	apperrors "fleetbook/pkg/errors"
	"fleetbook/pkg/model"
)

type CatalogService interface {
	ListTypes(ctx context.Context, wheels *int) ([]*model.VehicleType, error)
	ListVehicles(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error)
	Seed(ctx context.Context) error
}

type catalogService struct {
	repo repository.CatalogRepository
	cfg  *config.Config
	now  func() time.Time
}

func NewCatalogService(repo repository.CatalogRepository, cfg *config.Config) CatalogService {
	return &catalogService{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

func (s *catalogService) ListTypes(ctx context.Context, wheels *int) ([]*model.VehicleType, error) {
	types, err := s.repo.FindTypes(ctx, wheels)
	if err != nil {
		s.cfg.Log.Error("Failed to list vehicle types", "error", err)
		return nil, apperrors.Internal("Failed to retrieve vehicle types", err)
	}
	return types, nil
}

func (s *catalogService) ListVehicles(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error) {
	vehicles, err := s.repo.FindVehicles(ctx, typeID, wheels)
	if err != nil {
		s.cfg.Log.Error("Failed to list vehicles", "type_id", typeID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve vehicles", err)
	}
	return vehicles, nil
}

// Seed populates the reference catalog exactly once. The existence check
// is the only guard; Seed runs at process start before any traffic.
func (s *catalogService) Seed(ctx context.Context) error {
	count, err := s.repo.CountTypes(ctx)
	if err != nil {
		return apperrors.Internal("Failed to check existing catalog", err)
	}
	if count > 0 {
		s.cfg.Log.Info("Catalog already seeded", "vehicle_types", count)
		return nil
	}

	now := s.now().UTC()
	types := seedVehicleTypes(now)
	vehicles := seedVehicles(now)

	if err := s.repo.InsertTypes(ctx, types); err != nil {
		return apperrors.Internal("Failed to seed vehicle types", err)
	}
	if err := s.repo.InsertVehicles(ctx, vehicles); err != nil {
		return apperrors.Internal("Failed to seed vehicles", err)
	}

	s.cfg.Log.Info("Catalog seeded",
		"vehicle_types", len(types),
		"vehicles", len(vehicles),
	)
	return nil
}
