package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// SlotStep is the grid step between candidate start times, in minutes.
const SlotStep = 30

var ErrBadClock = errors.New("invalid clock value, expected HH:MM")

// Block is a working period within a day, in minutes since midnight.
// Start is inclusive, End exclusive.
type Block struct {
	Start int
	End   int
}

// Interval is a booked period within a day, in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Slot is one candidate start time offered to the client.
type Slot struct {
	Time      string `json:"time" example:"10:30"`
	Occupied  bool   `json:"occupied"`
	IsCurrent bool   `json:"is_current"`
}

// Request describes one availability computation for a single
// groomer and date.
type Request struct {
	Blocks          []Block
	Booked          []Interval
	DurationMinutes int

	// NowMinutes is the current wall clock in minutes since midnight
	// when the requested date is today, and -1 otherwise.
	NowMinutes int

	// CurrentStart marks the start of the appointment being
	// rescheduled, in minutes since midnight, or -1 when there is
	// no appointment to mark.
	CurrentStart int
}

// ParseClock parses an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrBadClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekdayIndex maps a date to the weekday numbering used by working
// blocks, where Monday is 0 and Sunday is 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Slots computes every candidate start time for the request. Starts
// are generated on the SlotStep grid within each working block, only
// where the full service duration fits before the block ends. A slot
// is occupied when its interval overlaps any booked interval, or when
// it has already started relative to NowMinutes.
func Slots(req Request) []Slot {
	var slots []Slot

	for _, block := range req.Blocks {
		for start := block.Start; start+req.DurationMinutes <= block.End; start += SlotStep {
			end := start + req.DurationMinutes

			occupied := false
			for _, booked := range req.Booked {
				if start < booked.End && end > booked.Start {
					occupied = true
					break
				}
			}

			if req.NowMinutes >= 0 && start <= req.NowMinutes {
				occupied = true
			}

			slots = append(slots, Slot{
				Time:      FormatClock(start),
				Occupied:  occupied,
				IsCurrent: req.CurrentStart >= 0 && start == req.CurrentStart,
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})

	return slots
}

// FirstFree returns the earliest free slot, or ok=false when every
// slot is occupied.
func FirstFree(slots []Slot) (Slot, bool) {
	for _, s := range slots {
		if !s.Occupied {
			return s, true
		}
	}
	return Slot{}, false
}
