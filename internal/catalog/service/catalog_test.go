package service

import (
	"context"
	"testing"
	"time"

	"fleetbook/pkg/config"
	"fleetbook/pkg/logger"
	"fleetbook/pkg/model"
)

// Mock repository for testing
type mockCatalogRepository struct {
	findTypesFunc    func(ctx context.Context, wheels *int) ([]*model.VehicleType, error)
	findVehiclesFunc func(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error)
	countTypesFunc   func(ctx context.Context) (int64, error)

	insertedTypes    []*model.VehicleType
	insertedVehicles []*model.Vehicle
}

func (m *mockCatalogRepository) FindTypes(ctx context.Context, wheels *int) ([]*model.VehicleType, error) {
	if m.findTypesFunc != nil {
		return m.findTypesFunc(ctx, wheels)
	}
	return []*model.VehicleType{}, nil
}

func (m *mockCatalogRepository) FindVehicles(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error) {
	if m.findVehiclesFunc != nil {
		return m.findVehiclesFunc(ctx, typeID, wheels)
	}
	return []*model.Vehicle{}, nil
}

func (m *mockCatalogRepository) CountTypes(ctx context.Context) (int64, error) {
	if m.countTypesFunc != nil {
		return m.countTypesFunc(ctx)
	}
	return 0, nil
}

func (m *mockCatalogRepository) InsertTypes(ctx context.Context, types []*model.VehicleType) error {
	m.insertedTypes = append(m.insertedTypes, types...)
	return nil
}

func (m *mockCatalogRepository) InsertVehicles(ctx context.Context, vehicles []*model.Vehicle) error {
	m.insertedVehicles = append(m.insertedVehicles, vehicles...)
	return nil
}

func newTestService(repo *mockCatalogRepository) *catalogService {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})

	return &catalogService{
		repo: repo,
		cfg:  &config.Config{Log: log},
		now:  func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestSeed_EmptyCatalog(t *testing.T) {
	repo := &mockCatalogRepository{}
	service := newTestService(repo)

	if err := service.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.insertedTypes) != 4 {
		t.Errorf("expected 4 vehicle types, got %d", len(repo.insertedTypes))
	}
	if len(repo.insertedVehicles) != 12 {
		t.Errorf("expected 12 vehicles, got %d", len(repo.insertedVehicles))
	}

	twoWheel := 0
	for _, vt := range repo.insertedTypes {
		if vt.Wheels == 2 {
			twoWheel++
		}
	}
	if twoWheel != 1 {
		t.Errorf("expected exactly one two-wheel type, got %d", twoWheel)
	}

	perType := map[string]int{}
	for _, v := range repo.insertedVehicles {
		perType[v.TypeID]++
	}
	for _, vt := range repo.insertedTypes {
		if perType[vt.ID] != 3 {
			t.Errorf("expected 3 vehicles for type %s, got %d", vt.ID, perType[vt.ID])
		}
	}
}

func TestSeed_AlreadySeeded(t *testing.T) {
	repo := &mockCatalogRepository{
		countTypesFunc: func(ctx context.Context) (int64, error) {
			return 4, nil
		},
	}
	service := newTestService(repo)

	if err := service.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.insertedTypes) != 0 || len(repo.insertedVehicles) != 0 {
		t.Errorf("second seed must not write: %d types, %d vehicles",
			len(repo.insertedTypes), len(repo.insertedVehicles))
	}
}

func TestListTypes_ForwardsWheelsFilter(t *testing.T) {
	var receivedWheels *int
	repo := &mockCatalogRepository{
		findTypesFunc: func(ctx context.Context, wheels *int) ([]*model.VehicleType, error) {
			receivedWheels = wheels
			return []*model.VehicleType{{ID: "cruiser", Wheels: 2}}, nil
		},
	}
	service := newTestService(repo)

	wheels := 2
	types, err := service.ListTypes(context.Background(), &wheels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receivedWheels == nil || *receivedWheels != 2 {
		t.Errorf("wheels filter not forwarded: %v", receivedWheels)
	}
	if len(types) != 1 || types[0].ID != "cruiser" {
		t.Errorf("unexpected result: %+v", types)
	}
}

func TestListVehicles_ForwardsBothFilters(t *testing.T) {
	var receivedTypeID string
	var receivedWheels *int
	repo := &mockCatalogRepository{
		findVehiclesFunc: func(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error) {
			receivedTypeID = typeID
			receivedWheels = wheels
			return []*model.Vehicle{}, nil
		},
	}
	service := newTestService(repo)

	wheels := 4
	if _, err := service.ListVehicles(context.Background(), "suv", &wheels); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receivedTypeID != "suv" {
		t.Errorf("type filter not forwarded: %q", receivedTypeID)
	}
	if receivedWheels == nil || *receivedWheels != 4 {
		t.Errorf("wheels filter not forwarded: %v", receivedWheels)
	}
}
