package models

import "slices"

type Role string

const (
	RoleAdmin    Role = "admin"
	RolePengurus Role = "pengurus"
	RoleDonatur  Role = "donatur"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePengurus, RoleDonatur:
		return true
	}
	return false
}

type Gender string

const (
	GenderLakiLaki  Gender = "laki-laki"
	GenderPerempuan Gender = "perempuan"
)

func (g Gender) Valid() bool {
	return g == GenderLakiLaki || g == GenderPerempuan
}

type EducationStatus string

const (
	EducationBelumSekolah EducationStatus = "belum_sekolah"
	EducationTK           EducationStatus = "tk"
	EducationSD           EducationStatus = "sd"
	EducationSMP          EducationStatus = "smp"
	EducationSMA          EducationStatus = "sma"
	EducationKuliah       EducationStatus = "kuliah"
	EducationLulus        EducationStatus = "lulus"
)

var EducationStatuses = []EducationStatus{
	EducationBelumSekolah, EducationTK, EducationSD, EducationSMP,
	EducationSMA, EducationKuliah, EducationLulus,
}

func (e EducationStatus) Valid() bool {
	return slices.Contains(EducationStatuses, e)
}

// DonationType decides which of amount or item fields a donation carries.
type DonationType string

const (
	DonationUang   DonationType = "uang"
	DonationBarang DonationType = "barang"
)

func (t DonationType) Valid() bool {
	return t == DonationUang || t == DonationBarang
}

type ExpenseCategory string

const (
	ExpenseMakanan     ExpenseCategory = "makanan"
	ExpensePendidikan  ExpenseCategory = "pendidikan"
	ExpenseKesehatan   ExpenseCategory = "kesehatan"
	ExpenseOperasional ExpenseCategory = "operasional"
	ExpenseLainnya     ExpenseCategory = "lainnya"
)

// ExpenseCategories lists every category in report order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseMakanan, ExpensePendidikan, ExpenseKesehatan, ExpenseOperasional, ExpenseLainnya,
}

func (c ExpenseCategory) Valid() bool {
	return slices.Contains(ExpenseCategories, c)
}

type ActivityType string

const (
	ActivityHarian   ActivityType = "harian"
	ActivityMingguan ActivityType = "mingguan"
	ActivityBulanan  ActivityType = "bulanan"
	ActivityKhusus   ActivityType = "khusus"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityHarian, ActivityMingguan, ActivityBulanan, ActivityKhusus:
		return true
	}
	return false
}

type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityOngoing   ActivityStatus = "ongoing"
	ActivityCompleted ActivityStatus = "completed"
	ActivityCancelled ActivityStatus = "cancelled"
)

func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityPlanned, ActivityOngoing, ActivityCompleted, ActivityCancelled:
		return true
	}
	return false
}

var activityTransitions = map[ActivityStatus][]ActivityStatus{
	ActivityPlanned: {ActivityOngoing, ActivityCancelled},
	ActivityOngoing: {ActivityCompleted, ActivityCancelled},
}

// CanTransitionTo reports whether the strict status graph allows moving from s to next.
// Staying in the same status is always allowed; completed and cancelled are terminal.
func (s ActivityStatus) CanTransitionTo(next ActivityStatus) bool {
	if s == next {
		return true
	}
	return slices.Contains(activityTransitions[s], next)
}
