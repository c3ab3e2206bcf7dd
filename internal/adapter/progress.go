package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/models"
)

// GetStats implements [ProgressAdapter].
func (h *httpServerAdapter) GetStats(ctx context.Context) (models.Stats, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/stats/")
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stats{}, err
	}

	env, err := decode[models.StatsEnvelope](resp, "stats")
	if err != nil {
		return models.Stats{}, err
	}
	return env.Stats, nil
}

// ListAchievements implements [ProgressAdapter].
func (h *httpServerAdapter) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/achievements/")
	if err != nil {
		return nil, fmt.Errorf("achievements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	env, err := decode[models.Envelope[[]models.Achievement]](resp, "achievements")
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ListGoals implements [ProgressAdapter].
func (h *httpServerAdapter) ListGoals(ctx context.Context) ([]models.Goal, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/goals/")
	if err != nil {
		return nil, fmt.Errorf("goals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	env, err := decode[models.Envelope[[]models.Goal]](resp, "goals")
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateGoal implements [ProgressAdapter].
func (h *httpServerAdapter) CreateGoal(ctx context.Context, input models.GoalInput) (models.Goal, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(input).
		Post("/api/goals/")
	if err != nil {
		return models.Goal{}, fmt.Errorf("create goal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Goal{}, err
	}

	env, err := decode[models.Envelope[models.Goal]](resp, "goal")
	if err != nil {
		return models.Goal{}, err
	}
	return env.Data, nil
}

// UpdateGoal implements [ProgressAdapter]. Nil fields of input are left
// unchanged by the backend.
func (h *httpServerAdapter) UpdateGoal(ctx context.Context, id string, input models.GoalInput) (models.Goal, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(input).
		Put("/api/goals/{id}")
	if err != nil {
		return models.Goal{}, fmt.Errorf("update goal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Goal{}, err
	}

	env, err := decode[models.Envelope[models.Goal]](resp, "goal")
	if err != nil {
		return models.Goal{}, err
	}
	return env.Data, nil
}

// DeleteGoal implements [ProgressAdapter].
func (h *httpServerAdapter) DeleteGoal(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/goals/{id}")
	if err != nil {
		return fmt.Errorf("delete goal request: %w", err)
	}

	return mapHTTPError(resp)
}
