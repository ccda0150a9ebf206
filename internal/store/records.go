// Package store adapts the typed Record/Reminder/User entities to the remote
// row store (Firestore collections filtered by userId). All methods are
// bounded by a caller-side timeout so a slow store cannot stall the inbound
// webhook past its delivery deadline.
package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/errs"
	"github.com/driverscash/driverscash-backend/internal/models"
)

type recordStore struct {
	client  *firestore.Client
	timeout time.Duration
}

func NewRecordStore(client *firestore.Client, timeout time.Duration) *recordStore {
	return &recordStore{client: client, timeout: timeout}
}

func (s *recordStore) collection() *firestore.CollectionRef {
	return s.client.Collection("records")
}

// Insert persists one immutable record. There is no update or delete path by
// design.
func (s *recordStore) Insert(ctx context.Context, r *models.Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if _, err := s.collection().Doc(r.ID).Create(ctx, r); err != nil {
		return errs.NewStoreUnavailableError("insert_record", "failed to insert record", err)
	}
	return nil
}

// List returns a full newest-first snapshot of the user's records, optionally
// narrowed by type and limit. The snapshot is finite and not restartable.
func (s *recordStore) List(ctx context.Context, uid string, q dto.RecordQuery) ([]models.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := s.collection().Where("userId", "==", uid)
	if q.Type != "" {
		query = query.Where("type", "==", string(q.Type))
	}
	ordered := query.OrderBy("date", firestore.Desc)
	if q.Limit > 0 {
		ordered = ordered.Limit(q.Limit)
	}

	iter := ordered.Documents(ctx)
	defer iter.Stop()

	var records []models.Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewStoreUnavailableError("list_records", "failed to list records", err)
		}
		var r models.Record
		if err := doc.DataTo(&r); err != nil {
			return nil, errs.NewStoreUnavailableError("list_records", "failed to decode record row", err)
		}
		records = append(records, r)
	}
	return records, nil
}

// LatestOdometer returns the most recent odometer record, or nil when the
// user has never sent one.
func (s *recordStore) LatestOdometer(ctx context.Context, uid string) (*models.Record, error) {
	records, err := s.List(ctx, uid, dto.RecordQuery{Type: models.RecordOdometer, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
