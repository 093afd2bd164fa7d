package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults applied on registration when the caller omits preferences.
const (
	DefaultTimezone      = "UTC"
	DefaultPreferredTime = "09:00"
)

// DayClock is a wall-clock time of day, parsed from "HH:MM".
type DayClock struct {
	Hour   int
	Minute int
}

func ParseDayClock(s string) (DayClock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return DayClock{}, fmt.Errorf("%w: preferred time must be in HH:MM format, got %q", ErrValidation, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return DayClock{}, fmt.Errorf("%w: invalid hour in %q", ErrValidation, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return DayClock{}, fmt.Errorf("%w: invalid minute in %q", ErrValidation, s)
	}

	if hour < 0 || hour > 23 {
		return DayClock{}, fmt.Errorf("%w: hour must be in [0,23], got %d", ErrValidation, hour)
	}
	if minute < 0 || minute > 59 {
		return DayClock{}, fmt.Errorf("%w: minute must be in [0,59], got %d", ErrValidation, minute)
	}

	return DayClock{Hour: hour, Minute: minute}, nil
}

func (c DayClock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinuteOfDay returns minutes elapsed since local midnight.
func (c DayClock) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// User is a subscriber to the daily quote delivery. The phone number is the
// SMS destination and is treated as opaque beyond being non-empty.
type User struct {
	ID            string
	Phone         string
	Timezone      string // IANA zone identifier, e.g. "Europe/Istanbul"
	PreferredTime string // "HH:MM" local wall-clock time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if _, err := ParseDayClock(u.PreferredTime); err != nil {
		return err
	}
	if _, err := time.LoadLocation(u.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrValidation, u.Timezone)
	}
	return nil
}

// Location resolves the user's IANA time zone.
func (u *User) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve timezone %q: %w", u.Timezone, err)
	}
	return loc, nil
}

// PreferredClock parses the stored preferred delivery time.
func (u *User) PreferredClock() (DayClock, error) {
	return ParseDayClock(u.PreferredTime)
}
