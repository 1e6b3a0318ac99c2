package trainerpay

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"erp-payroll/internal/shared/apperror"
	"erp-payroll/internal/shared/contextutil"
	"erp-payroll/internal/shared/period"
	"erp-payroll/internal/training"
	trainerpayerrors "erp-payroll/internal/trainerpay/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=trainer_payment_service.go -destination=mock/trainer_payment_service_mock.go -package=mock
type Service interface {
	GenerateForRange(ctx context.Context, start, end time.Time) (int, error)
	GetAll(ctx context.Context, filter GetTrainerPaymentsFilterRequest) ([]TrainerPaymentResponse, error)
	GetByID(ctx context.Context, id string) (TrainerPaymentResponse, error)
	MarkPaid(ctx context.Context, id string) (TrainerPaymentResponse, error)
	CountForRange(ctx context.Context, start, end time.Time) (int64, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	sessions training.Repository
}

func NewService(db *sql.DB, repo Repository, sessions training.Repository) Service {
	return &service{db: db, repo: repo, sessions: sessions}
}

// GenerateForRange pays each trainer a flat per-session rate for completed
// sessions inside [start, end]. Trainers with no completed sessions get no
// row, and trainers already covered by an overlapping payment are skipped.
func (s *service) GenerateForRange(ctx context.Context, start, end time.Time) (int, error) {
	log := contextutil.GetLogger(ctx, zap.L()).Named("trainerpay.generate")

	sessions, err := s.sessions.FindCompletedSessionsBetween(ctx, start, end)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInternalError,
			"fetch completed sessions failed", http.StatusInternalServerError)
	}
	if len(sessions) == 0 {
		return 0, nil
	}

	sessionCounts := make(map[uuid.UUID]int)
	for _, sess := range sessions {
		sessionCounts[sess.TrainerID]++
	}

	trainers, err := s.sessions.FindTrainers(ctx)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInternalError,
			"fetch trainer roster failed", http.StatusInternalServerError)
	}
	rates := make(map[uuid.UUID]int64, len(trainers))
	for _, tr := range trainers {
		rates[tr.ID] = tr.SessionRate
	}

	covered, err := s.repo.FindTrainerIDsOverlapping(ctx, start, end)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInternalError,
			"fetch existing trainer payments failed", http.StatusInternalServerError)
	}

	payments := make([]TrainerPayment, 0, len(sessionCounts))
	for trainerID, count := range sessionCounts {
		if _, ok := covered[trainerID]; ok {
			continue
		}

		rate, known := rates[trainerID]
		if !known {
			// A session pointing at an unknown trainer is data drift in the
			// training system, not a reason to fail the batch.
			log.Warn("session references unknown trainer, skipping",
				zap.String("trainer_id", trainerID.String()),
				zap.Int("session_count", count),
			)
			continue
		}

		payments = append(payments, TrainerPayment{
			ID:           uuid.New(),
			TrainerID:    trainerID,
			PeriodStart:  start,
			PeriodEnd:    end,
			SessionCount: count,
			Amount:       int64(count) * rate,
			Status:       StatusPending,
		})
	}

	if len(payments) == 0 {
		return 0, nil
	}

	created, err := s.repo.CreateBatch(ctx, payments)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInternalError,
			"insert trainer payments failed", http.StatusInternalServerError)
	}

	log.Info("trainer payments generated",
		zap.Time("period_start", start),
		zap.Time("period_end", end),
		zap.Int("created", created),
	)
	return created, nil
}

func (s *service) GetAll(ctx context.Context, filter GetTrainerPaymentsFilterRequest) ([]TrainerPaymentResponse, error) {
	repoFilter := QueryFilter{}

	if filter.Period != "" {
		p, err := period.Parse(filter.Period)
		if err != nil {
			return nil, err
		}
		start, end := p.Bounds()
		repoFilter.Start = &start
		repoFilter.End = &end
	}
	if filter.Status != "" {
		if filter.Status != StatusPending && filter.Status != StatusPaid {
			return nil, trainerpayerrors.ErrInvalidStatusFilter
		}
		status := filter.Status
		repoFilter.Status = &status
	}

	payments, err := s.repo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payments), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TrainerPaymentResponse, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TrainerPaymentResponse{}, mapLookupError(err)
	}

	return mapToResponse(*payment), nil
}

// MarkPaid transitions one payment to paid. There is intentionally no bulk
// variant for trainers.
func (s *service) MarkPaid(ctx context.Context, id string) (TrainerPaymentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TrainerPaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payment, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TrainerPaymentResponse{}, mapLookupError(err)
	}

	payment.Status = StatusPaid

	if err := qtx.Update(ctx, payment); err != nil {
		return TrainerPaymentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TrainerPaymentResponse{}, err
	}

	return mapToResponse(*payment), nil
}

func (s *service) CountForRange(ctx context.Context, start, end time.Time) (int64, error) {
	return s.repo.CountOverlapping(ctx, start, end)
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return trainerpayerrors.ErrPaymentNotFound
	}
	return err
}

func mapToResponse(payment TrainerPayment) TrainerPaymentResponse {
	return TrainerPaymentResponse{
		ID:           payment.ID.String(),
		TrainerID:    payment.TrainerID.String(),
		TrainerName:  payment.TrainerName,
		PeriodStart:  payment.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    payment.PeriodEnd.Format("2006-01-02"),
		SessionCount: payment.SessionCount,
		Amount:       payment.Amount,
		Status:       payment.Status,
		CreatedAt:    payment.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(payments []TrainerPayment) []TrainerPaymentResponse {
	resp := make([]TrainerPaymentResponse, len(payments))
	for i, payment := range payments {
		resp[i] = mapToResponse(payment)
	}
	return resp
}
