package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedOwner inserts a fresh owner row. Every test should use its own owner
// so parallel tests never see each other's rows.
func SeedOwner(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	u := domain.User{
		ID:        uuid.New(),
		Name:      "owner-" + uniqueSuffix(),
		Timezone:  domain.DefaultTimezone,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, timezone, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Name, u.Timezone, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOwner: %v", err)
	}

	return u
}

// SeedDeadline inserts an active deadline due on dueDate.
func SeedDeadline(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title string, dueDate time.Time) domain.Deadline {
	t.Helper()

	d := domain.Deadline{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      title,
		DueDate:    domain.DateOf(dueDate),
		Importance: domain.DefaultImportance,
		Status:     domain.DeadlineStatusOnTrack,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO deadlines (id, owner_id, title, due_date, importance, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.OwnerID, d.Title, d.DueDate, d.Importance, string(d.Status), d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeadline: %v", err)
	}

	return d
}
