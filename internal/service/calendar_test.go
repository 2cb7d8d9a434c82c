package service

import (
	"testing"
	"time"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketActivitiesByDay_GroupsByDay(t *testing.T) {
	acts := []model.Activity{
		{ActivityID: "a1", Title: "Ajedrez", Date: day(2026, time.March, 10), TimeRange: "10:00 - 12:00", Location: "Aula 3", IsActive: true},
		{ActivityID: "a2", Title: "Fútbol", Date: day(2026, time.March, 10), TimeRange: "14:00 - 16:00", Location: "Cancha", IsActive: true},
		{ActivityID: "a3", Title: "Teatro", Date: day(2026, time.March, 22), TimeRange: "18:00 - 20:00", Location: "Auditorio", IsActive: true},
	}

	days := BucketActivitiesByDay(acts, 2026, time.March)

	if len(days) != 2 {
		t.Fatalf("esperaba 2 días, obtuve %d", len(days))
	}
	if days[0].Date != "2026-03-10" || days[1].Date != "2026-03-22" {
		t.Errorf("días fuera de orden: %s, %s", days[0].Date, days[1].Date)
	}
	if len(days[0].Activities) != 2 {
		t.Errorf("esperaba 2 actividades el 10 de marzo, obtuve %d", len(days[0].Activities))
	}
	if days[0].Activities[0].Start != "10:00" && days[0].Activities[1].Start != "10:00" {
		t.Errorf("hora de inicio no separada del rango")
	}
}

func TestBucketActivitiesByDay_SortedAscending(t *testing.T) {
	acts := []model.Activity{
		{ActivityID: "a1", Title: "C", Date: day(2026, time.May, 28), IsActive: true},
		{ActivityID: "a2", Title: "A", Date: day(2026, time.May, 2), IsActive: true},
		{ActivityID: "a3", Title: "B", Date: day(2026, time.May, 15), IsActive: true},
	}

	days := BucketActivitiesByDay(acts, 2026, time.May)

	if len(days) != 3 {
		t.Fatalf("esperaba 3 días, obtuve %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date >= days[i].Date {
			t.Errorf("días desordenados: %s antes de %s", days[i-1].Date, days[i].Date)
		}
	}
}

func TestBucketActivitiesByDay_SkipsOutOfMonthAndZeroDates(t *testing.T) {
	acts := []model.Activity{
		{ActivityID: "a1", Title: "Dentro", Date: day(2026, time.April, 5), IsActive: true},
		{ActivityID: "a2", Title: "Otro mes", Date: day(2026, time.May, 5), IsActive: true},
		{ActivityID: "a3", Title: "Sin fecha", IsActive: true},
	}

	days := BucketActivitiesByDay(acts, 2026, time.April)

	if len(days) != 1 {
		t.Fatalf("esperaba 1 día, obtuve %d", len(days))
	}
	if len(days[0].Activities) != 1 || days[0].Activities[0].Title != "Dentro" {
		t.Errorf("actividad fuera del mes no fue descartada")
	}
}

func TestBucketActivitiesByDay_Placeholders(t *testing.T) {
	acts := []model.Activity{
		{ActivityID: "a1", Date: day(2026, time.June, 1), IsActive: true},
	}

	days := BucketActivitiesByDay(acts, 2026, time.June)

	if len(days) != 1 || len(days[0].Activities) != 1 {
		t.Fatalf("esperaba un día con una actividad")
	}
	got := days[0].Activities[0]
	if got.Title != "Actividad" {
		t.Errorf("título vacío debe degradar a 'Actividad', obtuve %q", got.Title)
	}
	if got.Start != "—" || got.End != "—" {
		t.Errorf("rango vacío debe degradar a '—', obtuve %q / %q", got.Start, got.End)
	}
	if got.Location != "Sin ubicación" {
		t.Errorf("ubicación vacía debe degradar a 'Sin ubicación', obtuve %q", got.Location)
	}
}

func TestBucketActivitiesByDay_EmptyInput(t *testing.T) {
	days := BucketActivitiesByDay(nil, 2026, time.January)
	if len(days) != 0 {
		t.Errorf("esperaba lista vacía, obtuve %d días", len(days))
	}
}

func TestSplitTimeRange(t *testing.T) {
	cases := []struct {
		in         string
		start, end string
	}{
		{"10:00 - 12:00", "10:00", "12:00"},
		{"10:00-12:00", "10:00", "12:00"},
		{"", "—", "—"},
		{"10:00 -", "10:00", "—"},
		{"- 12:00", "—", "12:00"},
	}
	for _, c := range cases {
		start, end := splitTimeRange(c.in)
		if start != c.start || end != c.end {
			t.Errorf("splitTimeRange(%q) = %q, %q; esperaba %q, %q", c.in, start, end, c.start, c.end)
		}
	}
}

func TestNextMonth_WrapsDecember(t *testing.T) {
	y, m := NextMonth(2026, time.December)
	if y != 2027 || m != time.January {
		t.Errorf("NextMonth(2026, diciembre) = %d, %v", y, m)
	}
	y, m = NextMonth(2026, time.June)
	if y != 2026 || m != time.July {
		t.Errorf("NextMonth(2026, junio) = %d, %v", y, m)
	}
}

func TestPrevMonth_WrapsJanuary(t *testing.T) {
	y, m := PrevMonth(2026, time.January)
	if y != 2025 || m != time.December {
		t.Errorf("PrevMonth(2026, enero) = %d, %v", y, m)
	}
	y, m = PrevMonth(2026, time.June)
	if y != 2026 || m != time.May {
		t.Errorf("PrevMonth(2026, junio) = %d, %v", y, m)
	}
}
