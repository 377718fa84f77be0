// Package entity provides battle combatants and their fluent builder.
package entity

import (
	"fmt"
	"strings"

	"github.com/samdwyer/battleband/internal/gamedata"
)

// Race represents a combatant's race.
type Race int

const (
	RaceOrc Race = iota
	RaceDwarf
	RaceHuman
	RaceElf
)

// String returns the race name.
func (r Race) String() string {
	switch r {
	case RaceOrc:
		return "Orc"
	case RaceDwarf:
		return "Dwarf"
	case RaceHuman:
		return "Human"
	case RaceElf:
		return "Elf"
	default:
		return "Unknown"
	}
}

// ID returns the race identifier for data lookup.
func (r Race) ID() string {
	switch r {
	case RaceOrc:
		return "orc"
	case RaceDwarf:
		return "dwarf"
	case RaceHuman:
		return "human"
	case RaceElf:
		return "elf"
	default:
		return "unknown"
	}
}

// ParseRace converts a string-sourced race kind to a Race. Unrecognized kinds
// return gamedata.ErrUnknownRace.
func ParseRace(s string) (Race, error) {
	switch strings.ToLower(s) {
	case "orc":
		return RaceOrc, nil
	case "dwarf":
		return RaceDwarf, nil
	case "human":
		return RaceHuman, nil
	case "elf":
		return RaceElf, nil
	default:
		return 0, fmt.Errorf("%w: %q", gamedata.ErrUnknownRace, s)
	}
}
