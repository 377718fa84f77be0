package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownRace is returned when a race kind has no definition.
var ErrUnknownRace = errors.New("unknown race kind")

// ErrUnknownWeapon is returned when a weapon kind has no definition.
var ErrUnknownWeapon = errors.New("unknown weapon kind")

// RaceRegistry holds loaded race definitions and provides lookup utilities.
type RaceRegistry struct {
	races []RaceDef
}

// NewRaceRegistry creates a registry from loaded race definitions.
func NewRaceRegistry(races []RaceDef) *RaceRegistry {
	return &RaceRegistry{races: races}
}

// LoadRaceRegistry loads and creates a registry from the embedded races.json.
func LoadRaceRegistry() (*RaceRegistry, error) {
	races, err := LoadRaces()
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, errors.New("no races loaded from races.json")
	}
	return NewRaceRegistry(races), nil
}

// MustLoadRaceRegistry loads a registry, panicking on error.
func MustLoadRaceRegistry() *RaceRegistry {
	registry, err := LoadRaceRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the race definition with the given ID, or nil if not found.
func (r *RaceRegistry) GetByID(id string) *RaceDef {
	for i := range r.races {
		if r.races[i].ID == id {
			return &r.races[i]
		}
	}
	return nil
}

// Resolve returns the race definition with the given ID, or ErrUnknownRace.
func (r *RaceRegistry) Resolve(id string) (*RaceDef, error) {
	if def := r.GetByID(id); def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRace, id)
}

// All returns all race definitions.
func (r *RaceRegistry) All() []RaceDef {
	return r.races
}

// Count returns the number of races in the registry.
func (r *RaceRegistry) Count() int {
	return len(r.races)
}

// =============================================================================
// WeaponRegistry
// =============================================================================

// WeaponRegistry holds loaded weapon definitions and provides lookup utilities.
type WeaponRegistry struct {
	weapons map[string]*WeaponDef
	all     []WeaponDef
}

// NewWeaponRegistry creates a registry from loaded weapon definitions.
func NewWeaponRegistry(weapons []WeaponDef) *WeaponRegistry {
	registry := &WeaponRegistry{
		weapons: make(map[string]*WeaponDef),
		all:     weapons,
	}
	for i := range weapons {
		registry.weapons[weapons[i].ID] = &weapons[i]
	}
	return registry
}

// LoadWeaponRegistry loads and creates a registry from the embedded weapons.json.
func LoadWeaponRegistry() (*WeaponRegistry, error) {
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, errors.New("no weapons loaded from weapons.json")
	}
	return NewWeaponRegistry(weapons), nil
}

// MustLoadWeaponRegistry loads a registry, panicking on error.
func MustLoadWeaponRegistry() *WeaponRegistry {
	registry, err := LoadWeaponRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the weapon definition with the given ID, or nil if not found.
func (r *WeaponRegistry) GetByID(id string) *WeaponDef {
	return r.weapons[id]
}

// Resolve returns the weapon definition with the given ID, or ErrUnknownWeapon.
func (r *WeaponRegistry) Resolve(id string) (*WeaponDef, error) {
	if def := r.GetByID(id); def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWeapon, id)
}

// All returns all weapon definitions.
func (r *WeaponRegistry) All() []WeaponDef {
	return r.all
}

// Count returns the number of weapons in the registry.
func (r *WeaponRegistry) Count() int {
	return len(r.all)
}
