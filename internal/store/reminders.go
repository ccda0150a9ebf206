package store

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/driverscash/driverscash-backend/internal/errs"
	"github.com/driverscash/driverscash-backend/internal/models"
)

type reminderStore struct {
	client  *firestore.Client
	timeout time.Duration
}

func NewReminderStore(client *firestore.Client, timeout time.Duration) *reminderStore {
	return &reminderStore{client: client, timeout: timeout}
}

func (s *reminderStore) collection() *firestore.CollectionRef {
	return s.client.Collection("reminders")
}

func (s *reminderStore) Insert(ctx context.Context, r *models.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if _, err := s.collection().Doc(r.ID).Create(ctx, r); err != nil {
		return errs.NewStoreUnavailableError("insert_reminder", "failed to insert reminder", err)
	}
	return nil
}

// ListActive returns the user's active reminders sorted by maintenance type,
// so alert output stays deterministic across calls.
func (s *reminderStore) ListActive(ctx context.Context, uid string) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.collection().
		Where("userId", "==", uid).
		Where("status", "==", string(models.ReminderActive)).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list_active_reminders", "failed to list reminders", err)
	}

	reminders := make([]models.Reminder, 0, len(docs))
	for _, d := range docs {
		var r models.Reminder
		if err := d.DataTo(&r); err != nil {
			return nil, errs.NewStoreUnavailableError("list_active_reminders", "failed to decode reminder row", err)
		}
		reminders = append(reminders, r)
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].MaintenanceType < reminders[j].MaintenanceType
	})
	return reminders, nil
}

// SetStatus moves every reminder of the given maintenance type from one
// status to another and reports how many rows changed. Zero means "nothing
// matched" and is not an error. When several reminders share a type they all
// transition.
func (s *reminderStore) SetStatus(ctx context.Context, uid, maintenanceType string, from, to models.ReminderStatus) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.collection().
		Where("userId", "==", uid).
		Where("maintenanceType", "==", maintenanceType).
		Where("status", "==", string(from)).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errs.NewStoreUnavailableError("set_reminder_status", "failed to query reminders", err)
	}

	now := time.Now()
	for _, d := range docs {
		_, err := d.Ref.Update(ctx, []firestore.Update{
			{Path: "status", Value: string(to)},
			{Path: "updatedAt", Value: now},
		})
		if err != nil {
			return 0, errs.NewStoreUnavailableError("set_reminder_status", "failed to update reminder", err)
		}
	}
	return len(docs), nil
}
