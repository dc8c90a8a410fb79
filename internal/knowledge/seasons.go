package knowledge

import "time"

// SeasonEntry is the season label and advice for one calendar month.
type SeasonEntry struct {
	Season string
	Advice string
}

// String renders the entry as "Season: advice".
func (e SeasonEntry) String() string {
	return e.Season + ": " + e.Advice
}

// SeasonalCalendar maps month indexes 0 (January) to 11 (December) to a
// SeasonEntry. It is read-only.
type SeasonalCalendar struct {
	entries [12]SeasonEntry
}

var defaultSeasons = [12]SeasonEntry{
	{Season: "Winter", Advice: "Plan your garden and start seeds indoors!"},
	{Season: "Winter", Advice: "Start planning and ordering seeds!"},
	{Season: "Early Spring", Advice: "Plant cool-season crops and prepare beds!"},
	{Season: "Spring", Advice: "Main planting season - get growing!"},
	{Season: "Spring", Advice: "Plant warm-season crops after last frost!"},
	{Season: "Late Spring", Advice: "Maintain and watch for pests!"},
	{Season: "Summer", Advice: "Water regularly and harvest!"},
	{Season: "Summer", Advice: "Peak harvest time!"},
	{Season: "Late Summer", Advice: "Plant fall crops now!"},
	{Season: "Fall", Advice: "Perfect for cool-season crops!"},
	{Season: "Fall", Advice: "Plant garlic and prepare for winter!"},
	{Season: "Early Winter", Advice: "Clean up and plan next season!"},
}

// DefaultCalendar returns the built-in northern-hemisphere calendar.
func DefaultCalendar() *SeasonalCalendar {
	return &SeasonalCalendar{entries: defaultSeasons}
}

// Entry returns the entry for month. Months outside 0..11 wrap modulo 12,
// so the lookup is total.
func (c *SeasonalCalendar) Entry(month int) SeasonEntry {
	return c.entries[NormalizeMonth(month)]
}

// NormalizeMonth folds any integer onto 0..11.
func NormalizeMonth(month int) int {
	return ((month % 12) + 12) % 12
}

// MonthIndex converts a wall-clock time to the calendar's 0-based month.
func MonthIndex(t time.Time) int {
	return int(t.Month()) - 1
}
