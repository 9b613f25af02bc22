package dto

import "altoque/internal/domain"

// ScheduleTimezone is the zone class times in the sheet are expressed in.
const ScheduleTimezone = "Europe/Dublin"

// BookableSlot is a slot with its pre-filled sign-up link.
type BookableSlot struct {
	Day    string `json:"day"`
	Time   string `json:"time"`
	Course string `json:"course"`
	Label  string `json:"label"`
	Href   string `json:"href"`
}

type DayResponse struct {
	Day   string         `json:"day"`
	Slots []BookableSlot `json:"slots"`
}

// ScheduleResponse is the weekly timetable.
// @Description Weekly class schedule
type ScheduleResponse struct {
	Timezone string         `json:"timezone"`
	Slots    []BookableSlot `json:"slots"`
	Days     []DayResponse  `json:"days"`
}

func newBookableSlot(s domain.ScheduleSlot) BookableSlot {
	return BookableSlot{
		Day:    s.Day,
		Time:   s.Time,
		Course: s.Course,
		Label:  domain.SlotLabel(s.Day, s.Time),
		Href:   domain.BookingHref(s.Day, s.Time, s.Course),
	}
}

// NewScheduleResponse builds the flat slot list and the Monday..Friday grouping.
func NewScheduleResponse(slots []domain.ScheduleSlot) *ScheduleResponse {
	resp := &ScheduleResponse{
		Timezone: ScheduleTimezone,
		Slots:    make([]BookableSlot, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, newBookableSlot(s))
	}
	for _, day := range domain.GroupByDay(slots) {
		dr := DayResponse{Day: day.Day, Slots: make([]BookableSlot, 0, len(day.Slots))}
		for _, s := range day.Slots {
			dr.Slots = append(dr.Slots, newBookableSlot(s))
		}
		resp.Days = append(resp.Days, dr)
	}
	return resp
}
