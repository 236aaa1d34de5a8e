package menu

import (
	"testing"
	"time"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/stretchr/testify/assert"
)

func isoDate(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := ParseISODate(raw)
	assert.NoError(t, err)
	return parsed
}

func TestNormalizeWeekdays(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []int
	}{
		{name: "nil", raw: nil, want: []int{}},
		{name: "scalar number", raw: 2.0, want: []int{2}},
		{name: "numeric list", raw: []interface{}{0.0, 4.0, 0.0}, want: []int{0, 4}},
		{name: "seven maps to sunday", raw: []interface{}{7.0}, want: []int{6}},
		{name: "string numbers", raw: []interface{}{"1", "3"}, want: []int{1, 3}},
		{name: "english names", raw: []interface{}{"Monday", "fri"}, want: []int{0, 4}},
		{name: "italian names", raw: []interface{}{"lunedì", "mercoledi", "DOM"}, want: []int{0, 2, 6}},
		{name: "garbage dropped", raw: []interface{}{"someday", 12.0, true}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWeekdays(tt.raw)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveScheduleMode(t *testing.T) {
	dated := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry *entities.MenuEntry
		want  string
	}{
		{
			name: "explicit mode wins",
			entry: &entities.MenuEntry{
				ServiceDate: dated,
				SpaceKey:    "cucina",
				Metadata:    map[string]interface{}{"schedule_mode": "Recurring_Weekly"},
			},
			want: domain.ScheduleRecurringWeekly,
		},
		{
			name:  "sentinel date means permanent",
			entry: &entities.MenuEntry{ServiceDate: PermanentServiceDate, SpaceKey: "cucina"},
			want:  domain.SchedulePermanent,
		},
		{
			name:  "legacy carta space means permanent",
			entry: &entities.MenuEntry{ServiceDate: dated, SpaceKey: "carta-principale"},
			want:  domain.SchedulePermanent,
		},
		{
			name:  "plain dated entry",
			entry: &entities.MenuEntry{ServiceDate: dated, SpaceKey: "cucina"},
			want:  domain.ScheduleDateSpecific,
		},
		{
			name: "unknown mode falls back to inference",
			entry: &entities.MenuEntry{
				ServiceDate: dated,
				SpaceKey:    "cucina",
				Metadata:    map[string]interface{}{"schedule_mode": "biweekly"},
			},
			want: domain.ScheduleDateSpecific,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveScheduleMode(tt.entry))
		})
	}
}

func TestAppliesOnValidityWindow(t *testing.T) {
	entry := &entities.MenuEntry{
		ServiceDate: PermanentServiceDate,
		SpaceKey:    "cucina",
		Metadata: map[string]interface{}{
			"valid_from": "2026-03-01",
			"valid_to":   "2026-03-31",
		},
	}

	assert.False(t, AppliesOn(entry, isoDate(t, "2026-02-28")))
	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-01")), "window start is inclusive")
	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-31")), "window end is inclusive")
	assert.False(t, AppliesOn(entry, isoDate(t, "2026-04-01")))
}

func TestAppliesOnRecurringWeekly(t *testing.T) {
	entry := &entities.MenuEntry{
		ServiceDate: PermanentServiceDate,
		SpaceKey:    "cucina",
		Metadata: map[string]interface{}{
			"schedule_mode": domain.ScheduleRecurringWeekly,
			"weekdays":      []interface{}{"wed", "fri"},
		},
	}

	// 2026-03-11 is a Wednesday, 2026-03-12 a Thursday
	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-11")))
	assert.False(t, AppliesOn(entry, isoDate(t, "2026-03-12")))
	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-13")))
}

func TestAppliesOnRecurringWithoutWeekdaysAppliesEveryDay(t *testing.T) {
	entry := &entities.MenuEntry{
		ServiceDate: PermanentServiceDate,
		SpaceKey:    "cucina",
		Metadata:    map[string]interface{}{"schedule_mode": domain.ScheduleRecurringWeekly},
	}

	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-11")))
	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-15")))
}

func TestAppliesOnDateSpecific(t *testing.T) {
	entry := &entities.MenuEntry{
		ServiceDate: isoDate(t, "2026-03-10"),
		SpaceKey:    "cucina",
	}

	assert.True(t, AppliesOn(entry, isoDate(t, "2026-03-10")))
	assert.False(t, AppliesOn(entry, isoDate(t, "2026-03-11")))
}
