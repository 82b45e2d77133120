package services

import (
	"context"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const activityColumns = `id, title, description, type, scheduled_date, end_date, location, participants,
photos, status, created_by, created_at, updated_at`

// ActivityPolicy controls how UpdateActivity treats status changes.
// With StrictTransitions unset any status may follow any other.
type ActivityPolicy struct {
	StrictTransitions bool
}

// CreateActivity schedules an activity in the planned state.
func CreateActivity(ctx context.Context, db *sqlx.DB, in models.CreateActivityInput) (models.Activity, error) {
	if err := in.Validate(); err != nil {
		return models.Activity{}, err
	}
	id := uuid.NewString()
	var activity models.Activity
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := ensureExists(ctx, tx, "users", "user", in.CreatedBy); err != nil {
			return err
		}
		_, err := execx(ctx, tx, `
INSERT INTO activities (id, title, description, type, scheduled_date, end_date, location, participants, photos, status, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, in.Title, in.Description, string(in.Type), in.ScheduledDate.UTC(), utcPtr(in.EndDate),
			in.Location, in.Participants, in.Photos, string(models.ActivityPlanned), in.CreatedBy, now())
		if err != nil {
			return asConstraintError(err, "insert activity")
		}
		activity, err = loadActivity(ctx, tx, id)
		return err
	})
	return activity, err
}

// GetActivitiesByDateRange returns activities whose scheduled_date falls on any
// calendar day (UTC) of the inclusive window, optionally of one type.
func GetActivitiesByDateRange(ctx context.Context, db *sqlx.DB, q models.ActivityQuery) ([]models.Activity, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	query := `SELECT ` + activityColumns + ` FROM activities WHERE scheduled_date >= ? AND scheduled_date < ?`
	args := []interface{}{q.StartDate.Time, q.EndDate.AddDays(1).Time}
	if q.Type != nil {
		query += ` AND type = ?`
		args = append(args, string(*q.Type))
	}
	query += ` ORDER BY scheduled_date ASC, created_at ASC, id ASC`

	activities := []models.Activity{}
	if err := selectx(ctx, db, &activities, query, args...); err != nil {
		return nil, WrapError(err, "list activities")
	}
	for i := range activities {
		normalizeActivity(&activities[i])
	}
	return activities, nil
}

// UpdateActivity merges the present fields of in over the stored activity.
// The merged schedule must still end no earlier than it starts.
func UpdateActivity(ctx context.Context, db *sqlx.DB, policy ActivityPolicy, in models.UpdateActivityInput) (models.Activity, error) {
	if err := in.Validate(); err != nil {
		return models.Activity{}, err
	}
	var activity models.Activity
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		current, err := loadActivity(ctx, tx, in.ID)
		if err != nil {
			return err
		}
		merged := current
		merged.Title = models.Merge(in.Title, current.Title)
		merged.Description = models.MergeNullable(in.Description, current.Description)
		merged.Type = models.Merge(in.Type, current.Type)
		merged.ScheduledDate = models.Merge(in.ScheduledDate, current.ScheduledDate).UTC()
		merged.EndDate = utcPtr(models.MergeNullable(in.EndDate, current.EndDate))
		merged.Location = models.MergeNullable(in.Location, current.Location)
		merged.Participants = models.MergeNullable(in.Participants, current.Participants)
		merged.Photos = models.MergeNullable(in.Photos, current.Photos)
		merged.Status = models.Merge(in.Status, current.Status)

		if err := models.ValidateSchedule(merged.ScheduledDate, merged.EndDate); err != nil {
			return err
		}
		if policy.StrictTransitions && !current.Status.CanTransitionTo(merged.Status) {
			return models.NewValidationError("status", "transition",
				"cannot move from "+string(current.Status)+" to "+string(merged.Status))
		}

		_, err = execx(ctx, tx, `
UPDATE activities
SET title = ?, description = ?, type = ?, scheduled_date = ?, end_date = ?, location = ?,
    participants = ?, photos = ?, status = ?, updated_at = ?
WHERE id = ?`,
			merged.Title, merged.Description, string(merged.Type), merged.ScheduledDate, merged.EndDate,
			merged.Location, merged.Participants, merged.Photos, string(merged.Status), now(), in.ID)
		if err != nil {
			return asConstraintError(err, "update activity")
		}
		activity, err = loadActivity(ctx, tx, in.ID)
		return err
	})
	return activity, err
}

func loadActivity(ctx context.Context, q sqlx.ExtContext, id string) (models.Activity, error) {
	var activity models.Activity
	if err := getx(ctx, q, &activity, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id); err != nil {
		return models.Activity{}, notFoundOr(err, "activity", id)
	}
	normalizeActivity(&activity)
	return activity, nil
}

func normalizeActivity(a *models.Activity) {
	a.ScheduledDate = a.ScheduledDate.UTC()
	a.EndDate = utcPtr(a.EndDate)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = utcPtr(a.UpdatedAt)
}
