package usecase

import (
	"context"
	"errors"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/logger"
	"go-candidate-backend/pkg/report"

	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	exporter domain.ReportExporter
}

func NewCandidateUsecase(repo domain.CandidateRepository, exporter domain.ReportExporter) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		exporter: exporter,
	}
}

func (u *candidateUsecase) Create(ctx context.Context, candidate *domain.Candidate) (string, error) {
	existing, err := u.repo.FindByEmail(ctx, candidate.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.Conflict(domain.MsgEmailAlreadyExists)
	}

	candidate.UUID = uuid.NewString()
	if err := u.repo.Create(ctx, candidate); err != nil {
		return "", err
	}
	return candidate.UUID, nil
}

func (u *candidateUsecase) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound(domain.MsgNotFound)
	}
	return candidate, nil
}

func (u *candidateUsecase) Update(ctx context.Context, id string, update domain.CandidateUpdate) (*domain.Candidate, error) {
	if bad := update.Violations(); len(bad) > 0 {
		return nil, apperror.Validation(domain.MsgValidationFailed, bad)
	}

	candidate, err := u.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound(domain.MsgNotFound)
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound(domain.MsgNotFound)
	}
	return nil
}

// Search treats an empty result set as NotFound rather than an empty list.
func (u *candidateUsecase) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	candidates, err := u.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperror.NotFound(domain.MsgNotFound)
	}
	return candidates, nil
}

func (u *candidateUsecase) GenerateReport(ctx context.Context, format report.Format) (*report.Report, error) {
	candidates, err := u.Search(ctx, domain.CandidateFilter{})
	if err != nil {
		return nil, err
	}

	records := make([]report.Record, len(candidates))
	for i, c := range candidates {
		records[i] = c
	}

	rep, err := u.exporter.Export(ctx, records, format)
	if err != nil {
		if errors.Is(err, report.ErrEmptyInput) {
			return nil, apperror.NotFound(domain.MsgNotFound)
		}
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Candidate report generated", "file", rep.Name, "rows", rep.Rows, "locations", rep.Locations)
	return rep, nil
}
