package services

import (
	"context"
	"testing"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
)

func validChild(name string) models.CreateChildInput {
	return models.CreateChildInput{
		FullName:        name,
		BirthDate:       day("2015-03-09"),
		Gender:          models.GenderPerempuan,
		EducationStatus: models.EducationSD,
		HealthHistory:   strPtr("asma ringan"),
		GuardianInfo:    nil,
		Notes:           strPtr("suka menggambar"),
	}
}

func TestCreateChildEchoesInput(t *testing.T) {
	database := newTestDB(t)
	in := validChild("Nur Aisyah")

	child, err := CreateChild(context.Background(), database, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !child.IsActive || child.UpdatedAt != nil || child.ID == "" || child.CreatedAt.IsZero() {
		t.Fatalf("server fields wrong: %+v", child)
	}
	if child.FullName != in.FullName || !child.BirthDate.Equal(in.BirthDate) ||
		child.Gender != in.Gender || child.EducationStatus != in.EducationStatus {
		t.Fatalf("fields not echoed: %+v", child)
	}
	if child.HealthHistory == nil || *child.HealthHistory != "asma ringan" || child.GuardianInfo != nil ||
		child.Notes == nil || *child.Notes != "suka menggambar" {
		t.Fatalf("nullable fields not echoed: %+v", child)
	}
	if child.BirthDate.Location() != time.UTC || child.BirthDate.Hour() != 0 {
		t.Fatalf("birth date not a calendar day: %v", child.BirthDate.Time)
	}
}

func TestCreateChildValidates(t *testing.T) {
	database := newTestDB(t)
	in := validChild("  ")
	in.Gender = "lainnya"
	_, err := CreateChild(context.Background(), database, in)
	wantValidation(t, err, "full_name")
	wantValidation(t, err, "gender")
}

func TestGetChildrenListsActiveInOrder(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	stepClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))

	var ids []string
	for _, name := range []string{"Ahmad", "Bunga", "Cahya"} {
		child, err := CreateChild(ctx, database, validChild(name))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		ids = append(ids, child.ID)
	}
	if _, err := UpdateChild(ctx, database, models.UpdateChildInput{ID: ids[1], IsActive: models.Some(false)}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	children, err := GetChildren(ctx, database)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if children[0].ID != ids[0] || children[1].ID != ids[2] {
		t.Fatalf("order = %s,%s want %s,%s", children[0].ID, children[1].ID, ids[0], ids[2])
	}
	for _, c := range children {
		if !c.IsActive {
			t.Fatalf("inactive child listed: %s", c.ID)
		}
	}

	hidden, err := GetChild(ctx, database, ids[1])
	if err != nil {
		t.Fatalf("get hidden: %v", err)
	}
	if hidden.IsActive {
		t.Fatalf("deactivated child still active")
	}
}

func TestUpdateChildMerges(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	created, err := CreateChild(ctx, database, validChild("Dimas"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var last *time.Time
	for i := 0; i < 2; i++ {
		updated, err := UpdateChild(ctx, database, models.UpdateChildInput{
			ID:       created.ID,
			FullName: models.Some("Dimas Pratama"),
		})
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if updated.FullName != "Dimas Pratama" {
			t.Fatalf("update %d: full_name = %s", i, updated.FullName)
		}
		if !updated.BirthDate.Equal(created.BirthDate) || updated.Gender != created.Gender ||
			updated.EducationStatus != created.EducationStatus || *updated.HealthHistory != *created.HealthHistory ||
			*updated.Notes != *created.Notes || !updated.IsActive || !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Fatalf("update %d touched other fields: %+v", i, updated)
		}
		if updated.UpdatedAt == nil {
			t.Fatalf("update %d: updated_at not set", i)
		}
		if last != nil && updated.UpdatedAt.Before(*last) {
			t.Fatalf("updated_at went backwards: %v then %v", *last, *updated.UpdatedAt)
		}
		last = updated.UpdatedAt
	}
}

func TestUpdateChildClearsExplicitNull(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	created, err := CreateChild(ctx, database, validChild("Eka"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := UpdateChild(ctx, database, models.UpdateChildInput{
		ID:            created.ID,
		HealthHistory: models.Null[string](),
		GuardianInfo:  models.Some("Paman Joko"),
		BirthDate:     models.Some(day("2014-12-31")),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.HealthHistory != nil {
		t.Fatalf("health_history not cleared: %v", *updated.HealthHistory)
	}
	if updated.GuardianInfo == nil || *updated.GuardianInfo != "Paman Joko" {
		t.Fatalf("guardian_info = %v", updated.GuardianInfo)
	}
	if updated.BirthDate.String() != "2014-12-31" {
		t.Fatalf("birth_date = %s", updated.BirthDate)
	}
	if updated.Notes == nil || *updated.Notes != "suka menggambar" {
		t.Fatalf("omitted notes changed: %v", updated.Notes)
	}
}

func TestUpdateChildErrors(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	missing := "5d1c2b3a-0000-4000-8000-000000000001"
	_, err := UpdateChild(ctx, database, models.UpdateChildInput{ID: missing, FullName: models.Some("X")})
	wantNotFound(t, err, "child", missing)

	_, err = UpdateChild(ctx, database, models.UpdateChildInput{ID: missing, FullName: models.Null[string]()})
	wantValidation(t, err, "full_name")

	_, err = UpdateChild(ctx, database, models.UpdateChildInput{ID: "not-a-uuid"})
	wantValidation(t, err, "id")
}
