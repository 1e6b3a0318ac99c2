package training

import (
	"context"
	"time"
)

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	GetSessions(ctx context.Context, filter GetSessionsFilterRequest) ([]SessionResponse, error)
	GetTrainers(ctx context.Context) ([]TrainerResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetSessions(ctx context.Context, filter GetSessionsFilterRequest) ([]SessionResponse, error) {
	repoFilter := SessionFilter{Status: filter.Status}

	// Bind tags already guarantee the date layout.
	if filter.From != "" {
		from, _ := time.ParseInLocation("2006-01-02", filter.From, time.UTC)
		repoFilter.From = &from
	}
	if filter.To != "" {
		to, _ := time.ParseInLocation("2006-01-02", filter.To, time.UTC)
		repoFilter.To = &to
	}

	sessions, err := s.repo.FindSessions(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	res := make([]SessionResponse, len(sessions))
	for i, sess := range sessions {
		res[i] = SessionResponse{
			ID:        sess.ID.String(),
			TrainerID: sess.TrainerID.String(),
			Title:     sess.Title,
			StartDate: sess.StartDate.Format("2006-01-02"),
			Status:    sess.Status,
		}
	}
	return res, nil
}

func (s *service) GetTrainers(ctx context.Context) ([]TrainerResponse, error) {
	trainers, err := s.repo.FindTrainers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]TrainerResponse, len(trainers))
	for i, tr := range trainers {
		res[i] = TrainerResponse{
			ID:          tr.ID.String(),
			FullName:    tr.FullName,
			SessionRate: tr.SessionRate,
			Status:      tr.Status,
		}
	}
	return res, nil
}
