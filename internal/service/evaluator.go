package service

import (
	"time"

	"github.com/infinifab/infinifab/internal/domain"
)

// IsDue reports whether a user should receive the daily quote at nowUTC.
// A user is due once their local wall clock passes the preferred time for
// the current local calendar day, and stays due until a SENT record exists
// for that day. The function is pure: duplicated or skipped wall-clock
// instants around DST transitions are absorbed entirely by the sentToday
// ledger guard, never by clock arithmetic here.
func IsDue(user domain.User, nowUTC time.Time, sentToday bool) (bool, error) {
	if !user.IsActive {
		return false, nil
	}

	loc, err := user.Location()
	if err != nil {
		return false, err
	}
	clock, err := user.PreferredClock()
	if err != nil {
		return false, err
	}

	local := nowUTC.In(loc)
	minuteOfDay := local.Hour()*60 + local.Minute()
	if minuteOfDay < clock.MinuteOfDay() {
		return false, nil
	}

	return !sentToday, nil
}

// LocalDeliveryDay returns the calendar day at nowUTC in the user's own
// time zone, formatted "2006-01-02". It is the unit of send idempotence.
func LocalDeliveryDay(user domain.User, nowUTC time.Time) (string, error) {
	loc, err := user.Location()
	if err != nil {
		return "", err
	}
	return nowUTC.In(loc).Format("2006-01-02"), nil
}
