package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// SeedStore is the write side used by the seeder.
type SeedStore interface {
	HasSeed(ctx context.Context, name string) (bool, error)
	RecordSeed(ctx context.Context, name string, counts map[string]int) error
	DeleteDataset(ctx context.Context, ds Dataset) error
	UpsertDataset(ctx context.Context, ds Dataset) error
}

// HasSeed reports whether a bundle with this name was already loaded.
func (s *MongoSource) HasSeed(ctx context.Context, name string) (bool, error) {
	n, err := s.coll(SeedLogCollection).CountDocuments(ctx, bson.D{{Key: "_id", Value: name}}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RecordSeed upserts the seed_log entry of a bundle.
func (s *MongoSource) RecordSeed(ctx context.Context, name string, counts map[string]int) error {
	_, err := s.coll(SeedLogCollection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: name}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "counts", Value: counts},
			{Key: "seededAt", Value: time.Now().UTC()},
		}}},
		options.Update().SetUpsert(true),
	)
	return err
}

// DeleteDataset removes the documents of ds by id, so a bundle can be
// reloaded without touching unrelated data.
func (s *MongoSource) DeleteDataset(ctx context.Context, ds Dataset) error {
	ids := map[string][]primitive.ObjectID{}
	for _, h := range ds.Hotels {
		ids[HotelsCollection] = append(ids[HotelsCollection], h.ID)
	}
	for _, r := range ds.Rooms {
		ids[RoomsCollection] = append(ids[RoomsCollection], r.ID)
	}
	for _, b := range ds.Bookings {
		ids[BookingsCollection] = append(ids[BookingsCollection], b.ID)
	}
	for _, r := range ds.Reviews {
		ids[ReviewsCollection] = append(ids[ReviewsCollection], r.ID)
	}
	for _, st := range ds.Settlements {
		ids[SettlementsCollection] = append(ids[SettlementsCollection], st.ID)
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, list := range ids {
		name, list := name, list
		g.Go(func() error {
			_, err := s.coll(name).DeleteMany(gctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: list}}}})
			return err
		})
	}
	return g.Wait()
}

// UpsertDataset writes every collection of ds concurrently. Documents are
// replaced by _id, so rerunning after a partial write converges.
func (s *MongoSource) UpsertDataset(ctx context.Context, ds Dataset) error {
	writes := map[string][]mongo.WriteModel{
		HotelsCollection:      replaceModels(ds.Hotels, func(h models.Hotel) primitive.ObjectID { return h.ID }),
		RoomsCollection:       replaceModels(ds.Rooms, func(r models.Room) primitive.ObjectID { return r.ID }),
		BookingsCollection:    replaceModels(ds.Bookings, func(b models.Booking) primitive.ObjectID { return b.ID }),
		ReviewsCollection:     replaceModels(ds.Reviews, func(r models.Review) primitive.ObjectID { return r.ID }),
		SettlementsCollection: replaceModels(ds.Settlements, func(st models.Settlement) primitive.ObjectID { return st.ID }),
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, list := range writes {
		name, list := name, list
		if len(list) == 0 {
			continue
		}
		g.Go(func() error {
			_, err := s.coll(name).BulkWrite(gctx, list, options.BulkWrite().SetOrdered(false))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func replaceModels[T any](items []T, id func(T) primitive.ObjectID) []mongo.WriteModel {
	out := make([]mongo.WriteModel, 0, len(items))
	for _, it := range items {
		out = append(out, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: id(it)}}).
			SetReplacement(it).
			SetUpsert(true))
	}
	return out
}
