package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyplan/ent"
	"github.com/abhisek/studyplan/ent/planrecord"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) SavePlan(ctx context.Context, rec PlanRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	existing, err := r.client.PlanRecord.Query().
		Where(planrecord.PlanID(rec.PlanID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.PlanRecord.Create().
			SetPlanID(rec.PlanID).
			SetCreatedAt(rec.CreatedAt.UTC()).
			SetDurationDays(rec.DurationDays).
			SetTotalHours(rec.TotalHours).
			SetLearningStyle(rec.LearningStyle).
			SetSyllabusExcerpt(rec.SyllabusExcerpt).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetCreatedAt(rec.CreatedAt.UTC()).
			SetDurationDays(rec.DurationDays).
			SetTotalHours(rec.TotalHours).
			SetLearningStyle(rec.LearningStyle).
			SetSyllabusExcerpt(rec.SyllabusExcerpt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) RecentPlans(ctx context.Context, limit int) ([]PlanRecord, error) {
	query := r.client.PlanRecord.Query().
		Order(ent.Desc(planrecord.FieldCreatedAt), ent.Desc(planrecord.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}

	out := make([]PlanRecord, 0, len(rows))
	for _, p := range rows {
		out = append(out, PlanRecord{
			PlanID:          p.PlanID,
			CreatedAt:       p.CreatedAt,
			DurationDays:    p.DurationDays,
			TotalHours:      p.TotalHours,
			LearningStyle:   p.LearningStyle,
			SyllabusExcerpt: p.SyllabusExcerpt,
		})
	}
	return out, nil
}
