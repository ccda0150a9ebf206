package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/driverscash/driverscash-backend/internal/errs"
	"github.com/driverscash/driverscash-backend/internal/models"
)

type userStore struct {
	client  *firestore.Client
	timeout time.Duration
}

func NewUserStore(client *firestore.Client, timeout time.Duration) *userStore {
	return &userStore{client: client, timeout: timeout}
}

func (s *userStore) collection() *firestore.CollectionRef {
	return s.client.Collection("users")
}

// GetByWhatsApp returns the driver owning a WhatsApp number, or nil when the
// number was never seen.
func (s *userStore) GetByWhatsApp(ctx context.Context, number string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.collection().
		Where("whatsapp", "==", number).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get_user", "failed to query user", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var u models.User
	if err := docs[0].DataTo(&u); err != nil {
		return nil, errs.NewStoreUnavailableError("get_user", "failed to decode user row", err)
	}
	return &u, nil
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if _, err := s.collection().Doc(u.ID).Create(ctx, u); err != nil {
		return errs.NewStoreUnavailableError("create_user", "failed to create user", err)
	}
	return nil
}
