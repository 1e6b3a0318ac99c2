package training_test

import (
	"context"
	"testing"
	"time"

	"erp-payroll/internal/training"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainingRepository struct {
	findCompletedSessionsBetweenFn func(ctx context.Context, start, end time.Time) ([]training.Session, error)
	findSessionsFn                 func(ctx context.Context, filter training.SessionFilter) ([]training.Session, error)
	findTrainersFn                 func(ctx context.Context) ([]training.Trainer, error)
	findTrainerByIDFn              func(ctx context.Context, id string) (*training.Trainer, error)
}

func (f *fakeTrainingRepository) FindCompletedSessionsBetween(ctx context.Context, start, end time.Time) ([]training.Session, error) {
	return f.findCompletedSessionsBetweenFn(ctx, start, end)
}

func (f *fakeTrainingRepository) FindSessions(ctx context.Context, filter training.SessionFilter) ([]training.Session, error) {
	return f.findSessionsFn(ctx, filter)
}

func (f *fakeTrainingRepository) FindTrainers(ctx context.Context) ([]training.Trainer, error) {
	return f.findTrainersFn(ctx)
}

func (f *fakeTrainingRepository) FindTrainerByID(ctx context.Context, id string) (*training.Trainer, error) {
	return f.findTrainerByIDFn(ctx, id)
}

func TestGetSessions_ParsesDateRangeFilter(t *testing.T) {
	var gotFilter training.SessionFilter
	repo := &fakeTrainingRepository{
		findSessionsFn: func(ctx context.Context, filter training.SessionFilter) ([]training.Session, error) {
			gotFilter = filter
			return []training.Session{
				{
					ID:        uuid.New(),
					TrainerID: uuid.New(),
					Title:     "Forklift safety",
					StartDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
					Status:    training.SessionStatusCompleted,
				},
			}, nil
		},
	}

	svc := training.NewService(repo)

	resp, err := svc.GetSessions(context.Background(), training.GetSessionsFilterRequest{
		Status: training.SessionStatusCompleted,
		From:   "2026-02-01",
		To:     "2026-02-28",
	})

	assert.NoError(t, err)
	assert.Equal(t, training.SessionStatusCompleted, gotFilter.Status)
	require.NotNil(t, gotFilter.From)
	require.NotNil(t, gotFilter.To)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), *gotFilter.From)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), *gotFilter.To)

	require.Len(t, resp, 1)
	assert.Equal(t, "2026-02-10", resp[0].StartDate)
}

func TestGetTrainers(t *testing.T) {
	repo := &fakeTrainingRepository{
		findTrainersFn: func(ctx context.Context) ([]training.Trainer, error) {
			return []training.Trainer{
				{ID: uuid.New(), FullName: "Dian", SessionRate: 150_000, Status: "active"},
			}, nil
		},
	}

	svc := training.NewService(repo)

	resp, err := svc.GetTrainers(context.Background())

	assert.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Dian", resp[0].FullName)
	assert.Equal(t, int64(150_000), resp[0].SessionRate)
}
