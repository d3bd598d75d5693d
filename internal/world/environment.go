package world

import (
	"fmt"
	"strings"
)

// WeatherType is the weather of one day in the forecast.
type WeatherType int

const (
	Sunny WeatherType = iota
	Rainy
	Foggy
	TropicalMonsoon
	TrentinoSnow
)

// String returns the display name of the weather.
func (w WeatherType) String() string {
	switch w {
	case Sunny:
		return "Sunny"
	case Rainy:
		return "Rainy"
	case Foggy:
		return "Foggy"
	case TropicalMonsoon:
		return "TropicalMonsoon"
	case TrentinoSnow:
		return "TrentinoSnow"
	default:
		return "Unknown"
	}
}

// ParseWeather accepts the display name in any case (e.g., "rainy").
func ParseWeather(name string) (WeatherType, error) {
	for _, w := range []WeatherType{Sunny, Rainy, Foggy, TropicalMonsoon, TrentinoSnow} {
		if strings.EqualFold(w.String(), name) {
			return w, nil
		}
	}
	return Sunny, fmt.Errorf("unknown weather %q", name)
}

// DayTime is the coarse part of the day derived from the hour.
type DayTime int

const (
	Morning DayTime = iota
	Afternoon
	Night
)

// String returns the display name of the part of day.
func (d DayTime) String() string {
	switch d {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	default:
		return "Night"
	}
}

// TimeOfDay is a wall-clock time.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// advance moves the clock forward and reports whether midnight was crossed.
func (t *TimeOfDay) advance(minutes int) bool {
	m := t.Minute + minutes
	for m >= 60 {
		t.Hour++
		m -= 60
	}
	t.Minute = m
	if t.Hour > 23 {
		t.Hour -= 24
		return true
	}
	return false
}

// EnvironmentalConditions is the world clock and its rotating weather forecast.
type EnvironmentalConditions struct {
	forecast    []WeatherType
	tickMinutes int
	time        TimeOfDay
}

// MaxTickMinutes is the longest tick a clock accepts.
const MaxTickMinutes = 255

// NewEnvironmentalConditions creates a clock starting at startHour:00 that
// advances tickMinutes per tick, 1 to MaxTickMinutes.
func NewEnvironmentalConditions(forecast []WeatherType, tickMinutes, startHour int) (*EnvironmentalConditions, error) {
	if len(forecast) == 0 {
		return nil, ErrEmptyForecast
	}
	if tickMinutes <= 0 || tickMinutes > MaxTickMinutes {
		return nil, ErrWrongTickMinutes
	}
	if startHour < 0 || startHour > 24 {
		return nil, ErrWrongHour
	}
	return &EnvironmentalConditions{
		forecast:    append([]WeatherType(nil), forecast...),
		tickMinutes: tickMinutes,
		time:        TimeOfDay{Hour: startHour},
	}, nil
}

// Tick advances the clock by one step. On a day change the forecast rotates
// and true is returned.
func (e *EnvironmentalConditions) Tick() bool {
	changed := e.time.advance(e.tickMinutes)
	if changed {
		e.forecast = append(e.forecast[1:], e.forecast[0])
	}
	return changed
}

// Weather returns today's weather.
func (e *EnvironmentalConditions) Weather() WeatherType {
	return e.forecast[0]
}

// Forecast returns a copy of the forecast, today first.
func (e *EnvironmentalConditions) Forecast() []WeatherType {
	return append([]WeatherType(nil), e.forecast...)
}

// Time returns the current time of day.
func (e *EnvironmentalConditions) Time() TimeOfDay {
	return e.time
}

// TickMinutes returns the clock step.
func (e *EnvironmentalConditions) TickMinutes() int {
	return e.tickMinutes
}

// DayTime returns the coarse part of the day.
func (e *EnvironmentalConditions) DayTime() DayTime {
	switch h := e.time.Hour; {
	case h <= 6 || h >= 21:
		return Night
	case h <= 11:
		return Morning
	default:
		return Afternoon
	}
}

// TimeString formats the clock as HH:MM.
func (e *EnvironmentalConditions) TimeString() string {
	return fmt.Sprintf("%02d:%02d", e.time.Hour, e.time.Minute)
}

// Clone returns an independent snapshot.
func (e *EnvironmentalConditions) Clone() *EnvironmentalConditions {
	c := *e
	c.forecast = e.Forecast()
	return &c
}

func (e *EnvironmentalConditions) String() string {
	return fmt.Sprintf("%s %s (%s)", e.TimeString(), e.Weather(), e.DayTime())
}
