package service

import (
	"testing"
	"time"

	"github.com/infinifab/infinifab/internal/domain"
)

func testUser(timezone, preferredTime string) domain.User {
	return domain.User{
		ID:            "u-1",
		Phone:         "+15551234567",
		Timezone:      timezone,
		PreferredTime: preferredTime,
		IsActive:      true,
	}
}

func TestIsDueAroundPreferredTime(t *testing.T) {
	t.Parallel()

	user := testUser("UTC", "09:00")

	testCases := []struct {
		name      string
		nowUTC    time.Time
		sentToday bool
		want      bool
	}{
		{
			name:   "one minute before preferred time",
			nowUTC: time.Date(2026, 3, 2, 8, 59, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "exactly at preferred time",
			nowUTC: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:      "after send the same day",
			nowUTC:    time.Date(2026, 3, 2, 9, 1, 0, 0, time.UTC),
			sentToday: true,
			want:      false,
		},
		{
			name:   "next day at preferred time",
			nowUTC: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "late evening still due when unsent",
			nowUTC: time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC),
			want:   true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := IsDue(user, tc.nowUTC, tc.sentToday)
			if err != nil {
				t.Fatalf("IsDue() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("IsDue() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsDueUsesSubscriberLocalClock(t *testing.T) {
	t.Parallel()

	// 09:00 in Tokyo is 00:00 UTC; at 23:30 UTC the previous day Tokyo is
	// already past 08:00 the next morning but not yet at 09:00.
	user := testUser("Asia/Tokyo", "09:00")

	due, err := IsDue(user, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatalf("IsDue() error = %v", err)
	}
	if !due {
		t.Fatal("user should be due at 09:00 Tokyo time")
	}

	due, err = IsDue(user, time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatalf("IsDue() error = %v", err)
	}
	if due {
		t.Fatal("user should not be due before 09:00 Tokyo time")
	}
}

func TestIsDueInactiveUserNeverDue(t *testing.T) {
	t.Parallel()

	user := testUser("UTC", "00:00")
	user.IsActive = false

	due, err := IsDue(user, time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatalf("IsDue() error = %v", err)
	}
	if due {
		t.Fatal("inactive user must never be due")
	}
}

func TestIsDueUnknownTimezone(t *testing.T) {
	t.Parallel()

	user := testUser("Mars/Olympus", "09:00")

	if _, err := IsDue(user, time.Now().UTC(), false); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestLocalDeliveryDayCrossesDateLine(t *testing.T) {
	t.Parallel()

	nowUTC := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	day, err := LocalDeliveryDay(testUser("Asia/Tokyo", "09:00"), nowUTC)
	if err != nil {
		t.Fatalf("LocalDeliveryDay() error = %v", err)
	}
	if day != "2026-03-02" {
		t.Fatalf("Tokyo day = %q, want %q", day, "2026-03-02")
	}

	day, err = LocalDeliveryDay(testUser("America/New_York", "09:00"), nowUTC)
	if err != nil {
		t.Fatalf("LocalDeliveryDay() error = %v", err)
	}
	if day != "2026-03-01" {
		t.Fatalf("New York day = %q, want %q", day, "2026-03-01")
	}
}
