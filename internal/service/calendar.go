package service

import (
	"sort"
	"strings"
	"time"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// Calendar grouping. The portal's calendar views show one month at a
// time: activities grouped by day, days sorted ascending, only days that
// have at least one activity. Grouping never fails; records with a
// missing date are skipped and missing display fields degrade to
// placeholders.

const (
	placeholderTitle    = "Actividad"
	placeholderTime     = "—"
	placeholderLocation = "Sin ubicación"
)

const dayFormat = "2006-01-02"

// NextMonth advances one month, wrapping December into January.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth goes back one month, wrapping January into December.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// splitTimeRange splits "HH:MM - HH:MM" into its ends, degrading to the
// placeholder when a side is absent.
func splitTimeRange(s string) (start, end string) {
	start, end = placeholderTime, placeholderTime
	if s == "" {
		return start, end
	}
	parts := strings.SplitN(s, "-", 2)
	if v := strings.TrimSpace(parts[0]); v != "" {
		start = v
	}
	if len(parts) == 2 {
		if v := strings.TrimSpace(parts[1]); v != "" {
			end = v
		}
	}
	return start, end
}

// BucketActivitiesByDay groups activities into per-day calendar buckets
// for the given month. Activities without a date or dated outside the
// month are skipped.
func BucketActivitiesByDay(acts []model.Activity, year int, month time.Month) []dto.CalendarDay {
	buckets := make(map[string]*dto.CalendarDay)

	for i := range acts {
		act := &acts[i]
		if act.Date.IsZero() {
			continue
		}
		if act.Date.Year() != year || act.Date.Month() != month {
			continue
		}

		key := act.Date.Format(dayFormat)
		day, ok := buckets[key]
		if !ok {
			day = &dto.CalendarDay{Date: key}
			buckets[key] = day
		}

		day.Activities = append(day.Activities, toCalendarActivity(act))
	}

	days := make([]dto.CalendarDay, 0, len(buckets))
	for _, day := range buckets {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}

func toCalendarActivity(act *model.Activity) dto.CalendarActivity {
	start, end := splitTimeRange(act.TimeRange)

	title := act.Title
	if title == "" {
		title = placeholderTitle
	}
	location := act.Location
	if location == "" {
		location = placeholderLocation
	}
	deadline := ""
	if act.RegistrationDeadline != nil {
		deadline = act.RegistrationDeadline.Format(time.RFC3339)
	}

	return dto.CalendarActivity{
		ID:                   act.ActivityID,
		Title:                title,
		Active:               act.IsActive,
		Start:                start,
		End:                  end,
		EventDate:            act.Date.Format(dayFormat),
		Capacity:             act.Capacity,
		Location:             location,
		RegistrationDeadline: deadline,
	}
}
