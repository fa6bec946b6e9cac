package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/hotelboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore keeps documents keyed by _id, like the Mongo collections do.
type fakeStore struct {
	seeded    map[string]map[string]int
	docs      map[primitive.ObjectID]string
	written   int
	deleted   int
	hasErr    error
	recordErr error
	// failAfter makes the next write stop with writeErr once that many
	// documents are stored; it is cleared after firing.
	failAfter int
	writeErr  error
}

func (f *fakeStore) HasSeed(_ context.Context, name string) (bool, error) {
	if f.hasErr != nil {
		return false, f.hasErr
	}
	_, ok := f.seeded[name]
	return ok, nil
}

func (f *fakeStore) RecordSeed(_ context.Context, name string, counts map[string]int) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	if f.seeded == nil {
		f.seeded = map[string]map[string]int{}
	}
	f.seeded[name] = counts
	return nil
}

func (f *fakeStore) DeleteDataset(_ context.Context, ds storage.Dataset) error {
	for id := range datasetIDs(ds) {
		if _, ok := f.docs[id]; ok {
			delete(f.docs, id)
			f.deleted++
		}
	}
	return nil
}

func (f *fakeStore) UpsertDataset(_ context.Context, ds storage.Dataset) error {
	if f.docs == nil {
		f.docs = map[primitive.ObjectID]string{}
	}
	n := 0
	for id, coll := range datasetIDs(ds) {
		if f.writeErr != nil && n == f.failAfter {
			err := f.writeErr
			f.writeErr = nil
			return err
		}
		f.docs[id] = coll
		f.written++
		n++
	}
	return nil
}

func datasetIDs(ds storage.Dataset) map[primitive.ObjectID]string {
	ids := map[primitive.ObjectID]string{}
	for _, h := range ds.Hotels {
		ids[h.ID] = storage.HotelsCollection
	}
	for _, r := range ds.Rooms {
		ids[r.ID] = storage.RoomsCollection
	}
	for _, b := range ds.Bookings {
		ids[b.ID] = storage.BookingsCollection
	}
	for _, r := range ds.Reviews {
		ids[r.ID] = storage.ReviewsCollection
	}
	for _, st := range ds.Settlements {
		ids[st.ID] = storage.SettlementsCollection
	}
	return ids
}

var _ storage.SeedStore = (*fakeStore)(nil)

func demoBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("")
	require.NoError(t, err)
	return b
}

var seedNow = time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)

func TestRun_FirstLoadThenSkip(t *testing.T) {
	store := &fakeStore{}
	b := demoBundle(t)

	res, err := Run(context.Background(), store, b, seedNow, false)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 14, res.Counts[storage.BookingsCollection])
	assert.Len(t, store.docs, 48)
	assert.Zero(t, store.deleted)

	res, err = Run(context.Background(), store, b, seedNow, false)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, 48, store.written)
}

func TestRun_ForceReloads(t *testing.T) {
	store := &fakeStore{}
	b := demoBundle(t)
	_, err := Run(context.Background(), store, b, seedNow, false)
	require.NoError(t, err)

	res, err := Run(context.Background(), store, b, seedNow, true)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 48, store.deleted)
	assert.Len(t, store.docs, 48)
	assert.Equal(t, 7, store.seeded["demo"][storage.HotelsCollection])
}

func TestRun_RetryAfterPartialWrite(t *testing.T) {
	reset := errors.New("connection reset")

	cases := []struct {
		name  string
		force bool
	}{
		{name: "plain retry"},
		{name: "forced retry", force: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{failAfter: 20, writeErr: reset}
			b := demoBundle(t)

			_, err := Run(context.Background(), store, b, seedNow, false)
			require.ErrorIs(t, err, reset)
			assert.Len(t, store.docs, 20)
			assert.Empty(t, store.seeded)

			res, err := Run(context.Background(), store, b, seedNow, tc.force)
			require.NoError(t, err)
			assert.False(t, res.Skipped)
			assert.Len(t, store.docs, 48)
			assert.Contains(t, store.seeded, "demo")
			if tc.force {
				assert.Equal(t, 20, store.deleted)
			} else {
				assert.Zero(t, store.deleted)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name    string
		store   *fakeStore
		wantErr string
	}{
		{name: "seed log unreadable", store: &fakeStore{hasErr: boom}, wantErr: "check seed log"},
		{name: "write fails", store: &fakeStore{writeErr: boom}, wantErr: "write"},
		{name: "record fails", store: &fakeStore{recordErr: boom}, wantErr: "record seed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(context.Background(), tc.store, demoBundle(t), seedNow, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Empty(t, tc.store.seeded)
		})
	}
}
