package menu

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"cookops-backend/domain"
	"cookops-backend/entities"
)

// PermanentServiceDate is the sentinel service date marking entries that are
// always in play regardless of the requested day.
var PermanentServiceDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// LegacySpacePrefix marks pre-scheduling à-la-carte entries; the newest dated
// batch of them substitutes for permanent entries when none exist.
const LegacySpacePrefix = "carta"

var supportedScheduleModes = map[string]bool{
	domain.SchedulePermanent:       true,
	domain.ScheduleDateSpecific:    true,
	domain.ScheduleRecurringWeekly: true,
}

// weekdayAliases maps localized weekday spellings to indices, Monday = 0.
var weekdayAliases = map[string]int{
	"mon": 0, "monday": 0, "lun": 0, "lunedì": 0, "lunedi": 0,
	"tue": 1, "tuesday": 1, "mar": 1, "martedì": 1, "martedi": 1,
	"wed": 2, "wednesday": 2, "mer": 2, "mercoledì": 2, "mercoledi": 2,
	"thu": 3, "thursday": 3, "gio": 3, "giovedì": 3, "giovedi": 3,
	"fri": 4, "friday": 4, "ven": 4, "venerdì": 4, "venerdi": 4,
	"sat": 5, "saturday": 5, "sab": 5,
	"sun": 6, "sunday": 6, "dom": 6, "domenica": 6,
}

// ScheduleMetadata is the typed view of the open metadata bag on a menu
// entry. Mode is empty when the bag carries none of the known modes; the
// effective mode then comes from ResolveScheduleMode's inference rule.
type ScheduleMetadata struct {
	Mode      string
	ValidFrom *time.Time
	ValidTo   *time.Time
	Weekdays  []int
}

func normalizeMode(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func hasLegacyPrefix(spaceKey string) bool {
	return strings.HasPrefix(spaceKey, LegacySpacePrefix)
}

// ParseISODate parses a YYYY-MM-DD value into a UTC date.
func ParseISODate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// weekdayIndex converts Go's Sunday-based weekday to the Monday = 0 scheme
// used by the weekdays metadata.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// NormalizeWeekdays accepts a scalar or list of weekday spellings (0–6
// Monday-based, 1–7, or localized names/abbreviations) and returns the
// sorted, de-duplicated Monday-based indices. Unrecognized items are dropped.
func NormalizeWeekdays(raw interface{}) []int {
	var items []interface{}
	switch value := raw.(type) {
	case nil:
		return nil
	case []interface{}:
		items = value
	default:
		items = []interface{}{value}
	}

	seen := make(map[int]bool)
	for _, item := range items {
		var candidate int
		switch value := item.(type) {
		case int:
			candidate = value
		case float64:
			candidate = int(value)
		case string:
			cleaned := strings.ToLower(strings.TrimSpace(value))
			if parsed, err := strconv.Atoi(cleaned); err == nil {
				candidate = parsed
			} else if mapped, ok := weekdayAliases[cleaned]; ok {
				seen[mapped] = true
				continue
			} else {
				continue
			}
		default:
			continue
		}

		if candidate >= 0 && candidate <= 6 {
			seen[candidate] = true
		} else if candidate == 7 {
			seen[6] = true
		}
	}

	normalized := make([]int, 0, len(seen))
	for day := range seen {
		normalized = append(normalized, day)
	}
	sort.Ints(normalized)
	return normalized
}

// DecodeScheduleMetadata lifts the scheduling attributes out of the open
// metadata bag.
func DecodeScheduleMetadata(metadata map[string]interface{}) ScheduleMetadata {
	decoded := ScheduleMetadata{}
	if metadata == nil {
		return decoded
	}

	if raw, ok := metadata["schedule_mode"].(string); ok {
		mode := strings.ToLower(strings.TrimSpace(raw))
		if supportedScheduleModes[mode] {
			decoded.Mode = mode
		}
	}
	if raw, ok := metadata["valid_from"].(string); ok {
		if parsed, err := ParseISODate(raw); err == nil {
			decoded.ValidFrom = &parsed
		}
	}
	if raw, ok := metadata["valid_to"].(string); ok {
		if parsed, err := ParseISODate(raw); err == nil {
			decoded.ValidTo = &parsed
		}
	}
	decoded.Weekdays = NormalizeWeekdays(metadata["weekdays"])
	return decoded
}

// ResolveScheduleMode returns the entry's effective schedule mode: the
// explicit metadata value when it is one of the known modes, otherwise
// inferred from the sentinel date and the legacy space prefix.
func ResolveScheduleMode(entry *entities.MenuEntry) string {
	decoded := DecodeScheduleMetadata(entry.Metadata)
	if decoded.Mode != "" {
		return decoded.Mode
	}
	if sameDate(entry.ServiceDate, PermanentServiceDate) {
		return domain.SchedulePermanent
	}
	if strings.HasPrefix(entry.SpaceKey, LegacySpacePrefix) {
		return domain.SchedulePermanent
	}
	return domain.ScheduleDateSpecific
}

// AppliesOn reports whether an entry is in effect on the target date: the
// valid_from/valid_to window is inclusive on both ends, recurring entries
// additionally require weekday membership (an empty set means every day),
// permanent entries always apply, date-specific entries only on their own
// service date.
func AppliesOn(entry *entities.MenuEntry, target time.Time) bool {
	decoded := DecodeScheduleMetadata(entry.Metadata)
	mode := ResolveScheduleMode(entry)

	if decoded.ValidFrom != nil && target.Before(*decoded.ValidFrom) {
		return false
	}
	if decoded.ValidTo != nil && target.After(*decoded.ValidTo) {
		return false
	}

	switch mode {
	case domain.ScheduleRecurringWeekly:
		if len(decoded.Weekdays) == 0 {
			return true
		}
		targetDay := weekdayIndex(target)
		for _, day := range decoded.Weekdays {
			if day == targetDay {
				return true
			}
		}
		return false
	case domain.SchedulePermanent:
		return true
	default:
		return sameDate(entry.ServiceDate, target)
	}
}
