package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/models"
)

func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestReminderLifecycleWithEmulator(t *testing.T) {
	ctx := context.Background()
	client := emulatorClient(t)
	store := NewReminderStore(client, 5*time.Second)
	uid := uuid.NewString()

	for _, r := range []*models.Reminder{
		{ID: uuid.NewString(), UserID: uid, MaintenanceType: "Oleo", TargetKM: "10000", Status: models.ReminderActive, CreatedDate: "2026-08-28"},
		{ID: uuid.NewString(), UserID: uid, MaintenanceType: "Pneus", TargetKM: "15000", Status: models.ReminderActive, CreatedDate: "2026-08-28"},
		{ID: uuid.NewString(), UserID: uid, MaintenanceType: "Correia", TargetKM: "9000", Status: models.ReminderCompleted, CreatedDate: "2026-08-01"},
	} {
		if err := store.Insert(ctx, r); err != nil {
			t.Fatalf("insert reminder: %v", err)
		}
	}

	active, err := store.ListActive(ctx, uid)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active count: %d", len(active))
	}
	// Sorted by maintenance type.
	if active[0].MaintenanceType != "Oleo" || active[1].MaintenanceType != "Pneus" {
		t.Fatalf("active order: %+v", active)
	}

	affected, err := store.SetStatus(ctx, uid, "Oleo", models.ReminderActive, models.ReminderCompleted)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected: %d", affected)
	}

	// Idempotent completion: the second call matches nothing and is not an
	// error.
	affected, err = store.SetStatus(ctx, uid, "Oleo", models.ReminderActive, models.ReminderCompleted)
	if err != nil {
		t.Fatalf("second set status: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second affected: %d", affected)
	}
}

func TestRecordListWithEmulator(t *testing.T) {
	ctx := context.Background()
	client := emulatorClient(t)
	store := NewRecordStore(client, 5*time.Second)
	uid := uuid.NewString()

	for _, r := range []*models.Record{
		{ID: uuid.NewString(), UserID: uid, Origin: models.OriginChat, Date: "2026-08-26", Type: models.RecordExpense, Category: "Posto", Value: "50"},
		{ID: uuid.NewString(), UserID: uid, Origin: models.OriginChat, Date: "2026-08-28", Type: models.RecordOdometer, Category: "KM", Value: "55000"},
		{ID: uuid.NewString(), UserID: "someone-else", Origin: models.OriginChat, Date: "2026-08-27", Type: models.RecordExpense, Category: "Posto", Value: "99"},
	} {
		if err := store.Insert(ctx, r); err != nil {
			t.Fatalf("insert record: %v", err)
		}
	}

	records, err := store.List(ctx, uid, dto.RecordQuery{})
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count: %d (user scoping broken?)", len(records))
	}
	if records[0].Date != "2026-08-28" {
		t.Fatalf("ordering: %+v", records)
	}

	latest, err := store.LatestOdometer(ctx, uid)
	if err != nil {
		t.Fatalf("latest odometer: %v", err)
	}
	if latest == nil || latest.Value != "55000" {
		t.Fatalf("latest odometer: %+v", latest)
	}
}
