// Package pregnancy computes due dates and gestational progress using
// Naegele's rule and its conception/ultrasound variants.
package pregnancy

import (
	"errors"
	"time"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/datetime"
)

// Method selects which reference date anchors the calculation.
type Method string

const (
	// MethodLMP dates the pregnancy from the last menstrual period.
	MethodLMP Method = "lmp"
	// MethodConception dates the pregnancy from the conception date.
	MethodConception Method = "conception"
	// MethodUltrasound dates the pregnancy from an ultrasound measurement.
	MethodUltrasound Method = "ultrasound"
)

// Input domain errors.
var (
	ErrInvalidMethod       = errors.New("method must be lmp, conception, or ultrasound")
	ErrMissingDate         = errors.New("reference date is required")
	ErrGestationalAgeRange = errors.New("gestational age must be between 1 and 40 weeks")
)

// Input holds the dating parameters. Only the date matching the method is
// consulted; GestationalAgeWeeks applies to the ultrasound method.
type Input struct {
	Method              Method
	LMPDate             time.Time
	ConceptionDate      time.Time
	UltrasoundDate      time.Time
	GestationalAgeWeeks int
}

// Milestone is a fixed checkpoint offset from the effective LMP date.
type Milestone struct {
	Week int       `json:"week"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// Result describes the pregnancy timeline relative to a reference "today".
type Result struct {
	DueDate       time.Time   `json:"dueDate"`
	CurrentWeek   int         `json:"currentWeek"`
	Trimester     int         `json:"trimester"`
	TrimesterName string      `json:"trimesterName"`
	DaysUntilDue  int         `json:"daysUntilDue"`
	Milestones    []Milestone `json:"milestones"`
}

// Calculate derives the due date and gestational progress as of today.
// All three methods reduce to an effective LMP-equivalent start date from
// which weeks and milestones are measured.
func Calculate(in Input, today time.Time) (Result, error) {
	var dueDate, effectiveLMP time.Time

	switch in.Method {
	case MethodLMP:
		if in.LMPDate.IsZero() {
			return Result{}, ErrMissingDate
		}
		effectiveLMP = in.LMPDate
		dueDate = datetime.AddDays(in.LMPDate, constants.GestationDays)
	case MethodConception:
		if in.ConceptionDate.IsZero() {
			return Result{}, ErrMissingDate
		}
		effectiveLMP = datetime.AddDays(in.ConceptionDate, -constants.ConceptionOffsetDays)
		dueDate = datetime.AddDays(in.ConceptionDate, constants.ConceptionToDueDays)
	case MethodUltrasound:
		if in.UltrasoundDate.IsZero() {
			return Result{}, ErrMissingDate
		}
		if in.GestationalAgeWeeks < 1 || in.GestationalAgeWeeks > 40 {
			return Result{}, ErrGestationalAgeRange
		}
		daysPregnant := in.GestationalAgeWeeks * constants.DaysPerWeek
		effectiveLMP = datetime.AddDays(in.UltrasoundDate, -daysPregnant)
		dueDate = datetime.AddDays(in.UltrasoundDate, constants.GestationDays-daysPregnant)
	default:
		return Result{}, ErrInvalidMethod
	}

	week := datetime.WeeksBetween(effectiveLMP, today)
	trimester, trimesterName := trimesterFor(week)

	daysUntilDue := datetime.DaysBetween(today, dueDate)
	if daysUntilDue < 0 {
		daysUntilDue = 0
	}

	return Result{
		DueDate:       dueDate,
		CurrentWeek:   week,
		Trimester:     trimester,
		TrimesterName: trimesterName,
		DaysUntilDue:  daysUntilDue,
		Milestones:    milestones(effectiveLMP, dueDate),
	}, nil
}

func trimesterFor(weeks int) (int, string) {
	switch {
	case weeks <= 13:
		return 1, "First Trimester"
	case weeks <= 27:
		return 2, "Second Trimester"
	default:
		return 3, "Third Trimester"
	}
}

func milestones(effectiveLMP, dueDate time.Time) []Milestone {
	weekDate := func(week int) time.Time {
		return datetime.AddDays(effectiveLMP, week*constants.DaysPerWeek)
	}
	return []Milestone{
		{Week: 12, Name: "First Trimester Ends", Date: weekDate(12)},
		{Week: 20, Name: "Halfway Point", Date: weekDate(20)},
		{Week: 27, Name: "Second Trimester Ends", Date: weekDate(27)},
		{Week: 37, Name: "Full Term", Date: weekDate(37)},
		{Week: 40, Name: "Due Date", Date: dueDate},
	}
}
