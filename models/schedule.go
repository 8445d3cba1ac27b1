package models

// MinuteRange is a half-open interval [Start, End) in minutes from
// midnight UTC (e.g., 480–960 for 08:00–16:00).
type MinuteRange struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Covers reports whether the range fully contains [start, end).
func (r MinuteRange) Covers(start, end int) bool {
	return r.Start <= start && end <= r.End
}

// Overlaps reports whether the range intersects [start, end).
func (r MinuteRange) Overlaps(start, end int) bool {
	return r.Start < end && start < r.End
}

// WeeklyHours is the recurring working pattern for one weekday.
// Weekday follows time.Weekday numbering (Sunday = 0).
type WeeklyHours struct {
	Weekday int           `bson:"weekday" json:"weekday"`
	Ranges  []MinuteRange `bson:"ranges" json:"ranges"`
}

// ScheduleException overrides the weekly pattern for a single date
// ("2006-01-02"). Empty Ranges means the whole day is off; otherwise
// the listed ranges are blocked out.
type ScheduleException struct {
	Date   string        `bson:"date" json:"date"`
	Ranges []MinuteRange `bson:"ranges,omitempty" json:"ranges,omitempty"`
}

// Schedule is a provider's recurring weekly hours plus dated exceptions.
type Schedule struct {
	Weekly     []WeeklyHours       `bson:"weekly" json:"weekly"`
	Exceptions []ScheduleException `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
}

// CoversSlot reports whether the schedule has the interval
// [startMin, endMin) free on the given date/weekday: some weekly range
// for that weekday contains it and no exception blocks any part of it.
func (s Schedule) CoversSlot(date string, weekday int, startMin, endMin int) bool {
	within := false
	for _, wh := range s.Weekly {
		if wh.Weekday != weekday {
			continue
		}
		for _, r := range wh.Ranges {
			if r.Covers(startMin, endMin) {
				within = true
				break
			}
		}
	}
	if !within {
		return false
	}
	for _, ex := range s.Exceptions {
		if ex.Date != date {
			continue
		}
		if len(ex.Ranges) == 0 {
			return false
		}
		for _, r := range ex.Ranges {
			if r.Overlaps(startMin, endMin) {
				return false
			}
		}
	}
	return true
}
