package models

import (
	"encoding/json"
	"testing"
)

func TestOptional_DecodeStates(t *testing.T) {
	var in UpdateChildInput
	body := `{"id":"x","notes":null,"guardian_info":"Paman","is_active":false}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if in.FullName.IsSet() {
		t.Fatalf("full_name should be absent")
	}
	if !in.Notes.IsSet() || !in.Notes.IsNull() {
		t.Fatalf("notes should be explicit null")
	}
	if v, ok := in.GuardianInfo.Get(); !ok || v != "Paman" {
		t.Fatalf("guardian_info = %q, %v", v, ok)
	}
	if v, ok := in.IsActive.Get(); !ok || v {
		t.Fatalf("is_active should be set to false")
	}
}

func TestOptional_DecodeTypeMismatch(t *testing.T) {
	var in UpdateChildInput
	if err := json.Unmarshal([]byte(`{"is_active":"yes"}`), &in); err == nil {
		t.Fatalf("expected error for string is_active")
	}
}

func TestMergeNullable(t *testing.T) {
	current := "lama"
	if got := MergeNullable(Optional[string]{}, &current); got == nil || *got != "lama" {
		t.Fatalf("absent should keep current, got %v", got)
	}
	if got := MergeNullable(Null[string](), &current); got != nil {
		t.Fatalf("null should clear, got %v", *got)
	}
	if got := MergeNullable(Some("baru"), nil); got == nil || *got != "baru" {
		t.Fatalf("value should replace, got %v", got)
	}
}

func TestMerge(t *testing.T) {
	if got := Merge(Optional[int]{}, 3); got != 3 {
		t.Fatalf("absent: got %d", got)
	}
	if got := Merge(Some(7), 3); got != 7 {
		t.Fatalf("value: got %d", got)
	}
}
