package services

import (
	"database/sql"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"1000000.00", "1000000", false},
		{"0.10", "0.1", false},
		{" 42 ", "42", false},
		{"12,50", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseAmount(%q) accepted", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseAmount(%q): %v", tt.raw, err)
		}
		if got.String() != tt.want {
			t.Fatalf("parseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}

	none, err := parseNullableAmount(sql.NullString{})
	if err != nil || none != nil {
		t.Fatalf("null amount = %v, %v", none, err)
	}
}

func TestFormatAmountAndDate(t *testing.T) {
	if got := formatAmount(dec("1500.5")); got != "1500.50" {
		t.Fatalf("formatAmount = %s", got)
	}
	if got := formatNullableAmount(nil); got != nil {
		t.Fatalf("formatNullableAmount(nil) = %v", got)
	}
	if got := formatDate(day("2024-02-29")); got != "2024-02-29" {
		t.Fatalf("formatDate = %s", got)
	}
}

func TestStoredDateComparesAsCalendarDay(t *testing.T) {
	tests := []string{"2024-01-15", "2024-01-15T00:00:00Z", "2024-01-15 00:00:00+00"}
	for _, raw := range tests {
		got, err := parseStoredDate(raw)
		if err != nil {
			t.Fatalf("parseStoredDate(%q): %v", raw, err)
		}
		if !got.Equal(day("2024-01-15")) {
			t.Fatalf("parseStoredDate(%q) = %v", raw, got.Time)
		}
	}
	if _, err := parseStoredDate("15/01/2024"); err == nil {
		t.Fatalf("foreign format accepted")
	}
}

func TestDonationRowToModel(t *testing.T) {
	created := time.Date(2024, 1, 15, 3, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	row := donationRow{
		ID: "d1", DonorID: "x", Type: "uang",
		Amount:       sql.NullString{String: "1000000.00", Valid: true},
		DonationDate: "2024-01-15",
		CreatedAt:    created,
	}
	d, err := row.toModel()
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if d.Amount == nil || d.Amount.String() != "1000000" || d.DonationDate.String() != "2024-01-15" {
		t.Fatalf("donation = %+v", d)
	}
	if d.CreatedAt.Location() != time.UTC || !d.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v", d.CreatedAt)
	}

	row.Amount.String = "abc"
	if _, err := row.toModel(); err == nil {
		t.Fatalf("bad stored amount accepted")
	}
}
