// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"
	"unicode"
)

// PantryStatus is the administrative state of a pantry event.
type PantryStatus string

const (
	PantryStatusUpcoming PantryStatus = "upcoming"
	PantryStatusActive   PantryStatus = "active"
	PantryStatusClosed   PantryStatus = "closed"
)

// IsValid checks if the PantryStatus is a known value.
func (s PantryStatus) IsValid() bool {
	switch s {
	case PantryStatusUpcoming, PantryStatusActive, PantryStatusClosed:
		return true
	default:
		return false
	}
}

const pantryIDLocationRunes = 5

// Pantry is one distribution event at one location.
type Pantry struct {
	PantryID         string       `json:"pantry_id"`
	EventDate        time.Time    `json:"event_date"`
	Location         string       `json:"location"`
	CapacityTotal    int          `json:"capacity_total"`
	ReservationCount int          `json:"reservation_count"`
	Status           PantryStatus `json:"status"`
	Title            string       `json:"title"`
	HeaderMessage    string       `json:"header_message"`
	EmailMessage     string       `json:"email_message"`
	ReservationStart time.Time    `json:"reservation_start"`
	ReservationEnd   time.Time    `json:"reservation_end"`
	LocationAddress  string       `json:"location_address"`
	LocationAccess   string       `json:"location_access"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// IsReservable reports whether now falls inside the registration window.
// Both ends are inclusive.
func (p *Pantry) IsReservable(now time.Time) bool {
	return !now.Before(p.ReservationStart) && !now.After(p.ReservationEnd)
}

// HasCapacity reports whether one more reservation fits. A zero capacity
// means unlimited.
func (p *Pantry) HasCapacity() bool {
	return p.CapacityTotal <= 0 || p.ReservationCount < p.CapacityTotal
}

// PantryID builds the composite key YY.MM.DD.<location>. The location part
// keeps only kanji and kana and is cut to five characters.
func PantryID(eventDate time.Time, location string) string {
	return fmt.Sprintf("%02d.%02d.%02d.%s",
		eventDate.Year()%100, int(eventDate.Month()), eventDate.Day(), PantryIDLocation(location))
}

// pantryIDLocationChars is the character class kept in pantry ids:
// hiragana, katakana including ー, CJK unified ideographs and half-width
// katakana including ｰ and the sound marks.
var pantryIDLocationChars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309F, Stride: 1},
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FAF, Stride: 1},
		{Lo: 0xFF66, Hi: 0xFF9F, Stride: 1},
	},
}

// PantryIDLocation returns the location component used in pantry ids.
func PantryIDLocation(location string) string {
	out := make([]rune, 0, pantryIDLocationRunes)
	for _, r := range location {
		if !unicode.Is(pantryIDLocationChars, r) {
			continue
		}
		out = append(out, r)
		if len(out) == pantryIDLocationRunes {
			break
		}
	}

	return string(out)
}

// DatePrefix formats the YYMMDD prefix used by record ids.
func DatePrefix(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month()), t.Day())
}
