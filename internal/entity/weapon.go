package entity

import (
	"fmt"
	"strings"

	"github.com/samdwyer/battleband/internal/gamedata"
)

// WeaponKind represents a kind of weapon from the catalog.
type WeaponKind int

const (
	WeaponSword WeaponKind = iota
	WeaponHalberd
	WeaponBow
)

// String returns the weapon kind name.
func (k WeaponKind) String() string {
	switch k {
	case WeaponSword:
		return "Sword"
	case WeaponHalberd:
		return "Halberd"
	case WeaponBow:
		return "Bow"
	default:
		return "Unknown"
	}
}

// ID returns the weapon identifier for catalog lookup.
func (k WeaponKind) ID() string {
	switch k {
	case WeaponSword:
		return "sword"
	case WeaponHalberd:
		return "halberd"
	case WeaponBow:
		return "bow"
	default:
		return "unknown"
	}
}

// ParseWeaponKind converts a string-sourced weapon kind to a WeaponKind.
// Unrecognized kinds return gamedata.ErrUnknownWeapon.
func ParseWeaponKind(s string) (WeaponKind, error) {
	switch strings.ToLower(s) {
	case "sword":
		return WeaponSword, nil
	case "halberd":
		return WeaponHalberd, nil
	case "bow":
		return WeaponBow, nil
	default:
		return 0, fmt.Errorf("%w: %q", gamedata.ErrUnknownWeapon, s)
	}
}
