package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
)

type progressService struct {
	guard
	adapter   adapter.ProgressAdapter
	validator validators.Validator
}

// NewProgressService constructs a [ProgressService].
func NewProgressService(progress adapter.ProgressAdapter, session AuthState, validator validators.Validator, logger *logger.Logger) ProgressService {
	return &progressService{
		guard:     guard{session: session, logger: logger},
		adapter:   progress,
		validator: validator,
	}
}

func (p *progressService) Stats(ctx context.Context) (models.Stats, error) {
	if !p.session.IsAuthenticated() {
		return models.Stats{}, ErrNotSignedIn
	}

	stats, err := p.adapter.GetStats(ctx)
	if err != nil {
		return models.Stats{}, p.fail(ctx, err)
	}
	return stats, nil
}

func (p *progressService) Achievements(ctx context.Context) ([]models.Achievement, error) {
	if !p.session.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}

	list, err := p.adapter.ListAchievements(ctx)
	if err != nil {
		return nil, p.fail(ctx, err)
	}
	return list, nil
}

func (p *progressService) Goals(ctx context.Context) ([]models.Goal, error) {
	if !p.session.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}

	list, err := p.adapter.ListGoals(ctx)
	if err != nil {
		return nil, p.fail(ctx, err)
	}
	return list, nil
}

func (p *progressService) CreateGoal(ctx context.Context, input models.GoalInput) (models.Goal, error) {
	if !p.session.IsAuthenticated() {
		return models.Goal{}, ErrNotSignedIn
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return models.Goal{}, fmt.Errorf("%w: title is required", validators.ErrInvalidInput)
	}
	if err := p.validator.Validate(ctx, input); err != nil {
		return models.Goal{}, err
	}

	goal, err := p.adapter.CreateGoal(ctx, input)
	if err != nil {
		return models.Goal{}, p.fail(ctx, err)
	}
	return goal, nil
}

func (p *progressService) UpdateGoal(ctx context.Context, id string, input models.GoalInput) (models.Goal, error) {
	if !p.session.IsAuthenticated() {
		return models.Goal{}, ErrNotSignedIn
	}
	if strings.TrimSpace(id) == "" {
		return models.Goal{}, fmt.Errorf("%w: goal id is required", validators.ErrInvalidInput)
	}
	if input == (models.GoalInput{}) {
		return models.Goal{}, ErrNothingToUpdate
	}
	if err := p.validator.Validate(ctx, input); err != nil {
		return models.Goal{}, err
	}

	goal, err := p.adapter.UpdateGoal(ctx, id, input)
	if err != nil {
		return models.Goal{}, p.fail(ctx, err)
	}
	return goal, nil
}

func (p *progressService) CompleteGoal(ctx context.Context, id string) (models.Goal, error) {
	progress, completed := 100, true
	return p.UpdateGoal(ctx, id, models.GoalInput{Progress: &progress, Completed: &completed})
}

func (p *progressService) DeleteGoal(ctx context.Context, id string) error {
	if !p.session.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: goal id is required", validators.ErrInvalidInput)
	}

	return p.fail(ctx, p.adapter.DeleteGoal(ctx, id))
}
