package service

import (
	"time"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// Point-in-time state derived from comparing stored dates against the
// clock. Nothing here is persisted; every check recomputes from now.

// RegistrationClosed reports whether enrolling is no longer possible.
// An activity without a deadline never opened registration. Instants are
// compared raw, without truncating to midnight.
func RegistrationClosed(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return true
	}
	return deadline.Before(now)
}

// ActivityEnded reports whether the activity day is over: the end of its
// calendar day lies before now.
func ActivityEnded(date time.Time, now time.Time) bool {
	if date.IsZero() {
		return false
	}
	endOfDay := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, now.Location())
	return endOfDay.Before(now)
}

// CanReview reports whether a student may leave a rating: an active
// enrollment, an activity that already took place, and no prior rating
// by the same student.
func CanReview(enrollmentStatus string, ended, alreadyRated bool) bool {
	return enrollmentStatus == model.EnrollmentActive && ended && !alreadyRated
}
