package services

import (
	"context"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

type DashboardSummary struct {
	GeneratedAt         time.Time                      `json:"generated_at"`
	ActiveChildren      int                            `json:"active_children"`
	ChildrenByGender    map[models.Gender]int          `json:"children_by_gender"`
	ChildrenByEducation map[models.EducationStatus]int `json:"children_by_education"`
	DonorCount          int                            `json:"donor_count"`
	UpcomingActivities  int                            `json:"upcoming_activities"`
	CurrentMonth        models.FinancialReport         `json:"current_month"`
}

type groupCount struct {
	Label string `db:"label"`
	Total int    `db:"total"`
}

// GetDashboardSummary gathers the headline numbers concurrently. The financial
// part covers the calendar month containing at, up to and including at's day.
func GetDashboardSummary(ctx context.Context, db *sqlx.DB, at time.Time) (DashboardSummary, error) {
	at = at.UTC()
	summary := DashboardSummary{
		GeneratedAt:         at,
		ChildrenByGender:    map[models.Gender]int{models.GenderLakiLaki: 0, models.GenderPerempuan: 0},
		ChildrenByEducation: make(map[models.EducationStatus]int, len(models.EducationStatuses)),
	}
	for _, status := range models.EducationStatuses {
		summary.ChildrenByEducation[status] = 0
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows := []groupCount{}
		if err := selectx(ctx, db, &rows, `SELECT gender AS label, COUNT(*) AS total FROM children WHERE is_active = ? GROUP BY gender`, true); err != nil {
			return WrapError(err, "count children by gender")
		}
		for _, row := range rows {
			summary.ChildrenByGender[models.Gender(row.Label)] = row.Total
			summary.ActiveChildren += row.Total
		}
		return nil
	})
	g.Go(func() error {
		rows := []groupCount{}
		if err := selectx(ctx, db, &rows, `SELECT education_status AS label, COUNT(*) AS total FROM children WHERE is_active = ? GROUP BY education_status`, true); err != nil {
			return WrapError(err, "count children by education")
		}
		for _, row := range rows {
			summary.ChildrenByEducation[models.EducationStatus(row.Label)] = row.Total
		}
		return nil
	})
	g.Go(func() error {
		return WrapError(getx(ctx, db, &summary.DonorCount, `SELECT COUNT(*) FROM donors`), "count donors")
	})
	g.Go(func() error {
		return WrapError(getx(ctx, db, &summary.UpcomingActivities,
			`SELECT COUNT(*) FROM activities WHERE status = ? AND scheduled_date >= ?`,
			string(models.ActivityPlanned), at), "count upcoming activities")
	})
	g.Go(func() error {
		today := models.DateOf(at)
		window := models.DateRangeInput{StartDate: today.AddDays(1 - today.Day()), EndDate: today}
		report, err := GetFinancialReport(ctx, db, window)
		if err != nil {
			return err
		}
		summary.CurrentMonth = report
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}
	return summary, nil
}
