package domain_test

import (
	"testing"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func plannedShift(startHour, endHour int) *domain.Schedule {
	return &domain.Schedule{
		ScheduleID: "sch-1",
		StaffID:    "staff-1",
		Date:       day,
		StartTime:  at(startHour, 0),
		EndTime:    at(endHour, 0),
	}
}

func TestValidateShiftWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"regular shift", at(9, 0), at(17, 0), false},
		{"ends at midnight", at(18, 0), day.AddDate(0, 0, 1), false},
		{"end equals start", at(9, 0), at(9, 0), true},
		{"end before start", at(17, 0), at(9, 0), true},
		{"starts the day before", day.Add(-time.Hour), at(9, 0), true},
		{"crosses midnight", at(22, 0), day.AddDate(0, 0, 1).Add(2 * time.Hour), true},
		{"zero end", at(9, 0), time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateShiftWindow(day, tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCalendarDate(t *testing.T) {
	east := time.FixedZone("EET", 2*60*60)
	west := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"utc", time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC), day},
		{"east of utc at local midnight", time.Date(2025, 3, 14, 0, 0, 0, 0, east), day},
		{"west of utc late evening", time.Date(2025, 3, 14, 22, 0, 0, 0, west), day},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CalendarDate(tt.in)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestSchedule_Overlaps(t *testing.T) {
	existing := plannedShift(9, 17)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"tail overlap", at(16, 0), at(20, 0), true},
		{"head overlap", at(7, 0), at(9, 30), true},
		{"contained", at(10, 0), at(11, 0), true},
		{"containing", at(8, 0), at(18, 0), true},
		{"touching end", at(17, 0), at(20, 0), false},
		{"touching start", at(6, 0), at(9, 0), false},
		{"disjoint", at(18, 0), at(19, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.end))
		})
	}
}

func TestSchedule_CheckInCheckOut(t *testing.T) {
	s := plannedShift(9, 17)

	require.ErrorIs(t, s.CheckOut(at(17, 0)), apperrors.ErrInvalidState, "check-out before check-in")

	require.NoError(t, s.CheckIn(at(8, 55)))
	require.NotNil(t, s.CheckinTime)
	assert.Equal(t, at(8, 55), *s.CheckinTime)

	assert.ErrorIs(t, s.CheckIn(at(9, 0)), apperrors.ErrInvalidState, "second check-in")
	assert.Equal(t, at(8, 55), *s.CheckinTime, "check-in time must not be overwritten")

	assert.ErrorIs(t, s.CheckOut(at(8, 0)), apperrors.ErrInvalidState, "check-out precedes check-in")
	assert.Nil(t, s.CheckoutTime)

	require.NoError(t, s.CheckOut(at(17, 5)))
	require.NotNil(t, s.CheckoutTime)
	assert.False(t, s.CheckoutTime.Before(*s.CheckinTime))

	assert.ErrorIs(t, s.CheckOut(at(18, 0)), apperrors.ErrInvalidState, "second check-out")
	assert.Equal(t, at(17, 5), *s.CheckoutTime)
}

func TestSchedule_CheckOutAtCheckInInstant(t *testing.T) {
	s := plannedShift(9, 17)
	require.NoError(t, s.CheckIn(at(9, 0)))
	assert.NoError(t, s.CheckOut(at(9, 0)))
}

func TestSchedule_Cancel(t *testing.T) {
	t.Run("planned shift", func(t *testing.T) {
		s := plannedShift(9, 17)
		require.NoError(t, s.Cancel("  sick leave "))
		require.True(t, s.IsCancelled())
		assert.Equal(t, "sick leave", *s.DeletionNotice)

		assert.ErrorIs(t, s.CheckIn(at(9, 0)), apperrors.ErrInvalidState)
		assert.ErrorIs(t, s.Cancel("again"), apperrors.ErrInvalidState)
	})

	t.Run("checked-in shift can be cancelled", func(t *testing.T) {
		s := plannedShift(9, 17)
		require.NoError(t, s.CheckIn(at(9, 0)))
		require.NoError(t, s.Cancel("sent home"))

		require.NoError(t, s.CheckOut(at(10, 0)), "worked interval is still recorded")
		assert.Equal(t, at(10, 0), *s.CheckoutTime)
		assert.True(t, s.IsCancelled())
		assert.ErrorIs(t, s.CheckOut(at(11, 0)), apperrors.ErrInvalidState)
	})

	t.Run("completed shift", func(t *testing.T) {
		s := plannedShift(9, 17)
		require.NoError(t, s.CheckIn(at(9, 0)))
		require.NoError(t, s.CheckOut(at(17, 0)))
		assert.ErrorIs(t, s.Cancel("too late"), apperrors.ErrInvalidState)
		assert.Nil(t, s.DeletionNotice)
	})

	t.Run("empty reason", func(t *testing.T) {
		s := plannedShift(9, 17)
		assert.ErrorIs(t, s.Cancel("   "), apperrors.ErrValidation)
		assert.False(t, s.IsCancelled())
	})
}

func TestStaffMember_IsClockedInto(t *testing.T) {
	id := "sch-1"
	m := domain.StaffMember{StaffID: "staff-1"}
	assert.False(t, m.IsClockedInto(id))
	m.CurrentScheduleID = &id
	assert.True(t, m.IsClockedInto("sch-1"))
	assert.False(t, m.IsClockedInto("sch-2"))
}

func TestStaffEnums(t *testing.T) {
	assert.True(t, domain.RoleWaiter.IsValid())
	assert.False(t, domain.StaffRole("DJ").IsValid())
	assert.True(t, domain.SalaryHourly.IsValid())
	assert.False(t, domain.SalaryType("WEEKLY").IsValid())
}
