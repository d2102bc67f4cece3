package repository

import (
	"context"
	"fmt"
	"time"

	"fleetbook/pkg/config"
	"fleetbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	VehicleTypesCollection = "vehicle_types"
	VehiclesCollection     = "vehicles"
)

type CatalogRepository interface {
	FindTypes(ctx context.Context, wheels *int) ([]*model.VehicleType, error)
	FindVehicles(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error)
	CountTypes(ctx context.Context) (int64, error)
	InsertTypes(ctx context.Context, types []*model.VehicleType) error
	InsertVehicles(ctx context.Context, vehicles []*model.Vehicle) error
}

type mongoCatalogRepository struct {
	cfg      *config.Config
	types    *mongo.Collection
	vehicles *mongo.Collection
}

func NewMongoCatalogRepository(cfg *config.Config) CatalogRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCatalogRepository{
		cfg:      cfg,
		types:    db.Collection(VehicleTypesCollection),
		vehicles: db.Collection(VehiclesCollection),
	}
}

func (r *mongoCatalogRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoCatalogRepository) FindTypes(ctx context.Context, wheels *int) ([]*model.VehicleType, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{}
	if wheels != nil {
		filter["wheels"] = *wheels
	}

	cursor, err := r.types.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []*model.VehicleType
	if err = cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle types: %w", err)
	}

	return types, nil
}

func (r *mongoCatalogRepository) FindVehicles(ctx context.Context, typeID string, wheels *int) ([]*model.Vehicle, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{}
	if typeID != "" {
		filter["type_id"] = typeID
	}
	if wheels != nil {
		filter["wheels"] = *wheels
	}

	cursor, err := r.vehicles.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*model.Vehicle
	if err = cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *mongoCatalogRepository) CountTypes(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.types.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicle types: %w", err)
	}
	return count, nil
}

func (r *mongoCatalogRepository) InsertTypes(ctx context.Context, types []*model.VehicleType) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	docs := make([]any, len(types))
	for i, t := range types {
		docs[i] = t
	}

	if _, err := r.types.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert vehicle types: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepository) InsertVehicles(ctx context.Context, vehicles []*model.Vehicle) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	docs := make([]any, len(vehicles))
	for i, v := range vehicles {
		docs[i] = v
	}

	if _, err := r.vehicles.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert vehicles: %w", err)
	}
	return nil
}
