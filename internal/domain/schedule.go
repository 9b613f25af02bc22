package domain

import (
	"net/url"
	"sort"
	"strings"
)

// WeekOrder is the fixed order of teaching days on the schedule page.
var WeekOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ScheduleSlot is one bookable class time from the schedule sheet.
type ScheduleSlot struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Course  string `json:"course"`
	Enabled bool   `json:"enabled"`
}

// DaySchedule holds one weekday's slots, sorted by time.
type DaySchedule struct {
	Day   string         `json:"day"`
	Slots []ScheduleSlot `json:"slots"`
}

// GroupByDay buckets slots into Monday..Friday. Slots on other days are dropped.
func GroupByDay(slots []ScheduleSlot) []DaySchedule {
	byDay := make(map[string][]ScheduleSlot, len(WeekOrder))
	for _, day := range WeekOrder {
		byDay[day] = []ScheduleSlot{}
	}
	for _, s := range slots {
		if _, ok := byDay[s.Day]; ok {
			byDay[s.Day] = append(byDay[s.Day], s)
		}
	}

	week := make([]DaySchedule, 0, len(WeekOrder))
	for _, day := range WeekOrder {
		daySlots := byDay[day]
		sort.SliceStable(daySlots, func(i, j int) bool { return daySlots[i].Time < daySlots[j].Time })
		week = append(week, DaySchedule{Day: day, Slots: daySlots})
	}
	return week
}

// SlotLabel is the schedule value a slot pre-fills on the sign-up form.
func SlotLabel(day, time string) string {
	return day + " " + time
}

// BookingHref links a slot to the sign-up page with schedule and course pre-filled.
func BookingHref(day, time, course string) string {
	return "/inscripcion?slot=" + escapeComponent(SlotLabel(day, time)) + "&course=" + escapeComponent(course)
}

// escapeComponent percent-encodes like encodeURIComponent, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
