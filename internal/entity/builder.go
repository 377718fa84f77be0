package entity

import (
	"github.com/samdwyer/battleband/internal/gamedata"
)

// Builder assembles a Character step by step. It is created pre-populated from
// the race stat table; each With* call mutates the in-progress character and
// returns the builder, so any subset of steps can be chained in any order
// before Build.
//
// Numeric overrides are accepted as-is, without range validation. The first
// unknown race or weapon kind is recorded and surfaced by Build.
type Builder struct {
	weapons *gamedata.WeaponRegistry
	c       *Character
	err     error
}

// NewBuilder starts building a character of the given race, with stats
// pre-populated from the race registry.
func NewBuilder(races *gamedata.RaceRegistry, weapons *gamedata.WeaponRegistry, race Race, name string) *Builder {
	b := &Builder{
		weapons: weapons,
		c: &Character{
			Name: name,
			Race: race,
		},
	}

	def, err := races.Resolve(race.ID())
	if err != nil {
		b.err = err
		return b
	}

	b.c.HP = def.Health
	b.c.MaxHP = def.Health
	b.c.Strength = def.Strength
	b.c.DodgeChance = def.DodgeChance
	return b
}

// WithHealth overrides starting and maximum health.
func (b *Builder) WithHealth(health int) *Builder {
	b.c.HP = health
	b.c.MaxHP = health
	return b
}

// WithStrength overrides the strength stat.
func (b *Builder) WithStrength(strength int) *Builder {
	b.c.Strength = strength
	return b
}

// WithDodgeChance overrides the dodge chance.
func (b *Builder) WithDodgeChance(chance int) *Builder {
	b.c.DodgeChance = chance
	return b
}

// WithWeapon equips a weapon from the catalog.
func (b *Builder) WithWeapon(kind WeaponKind) *Builder {
	def, err := b.weapons.Resolve(kind.ID())
	if err != nil {
		b.fail(err)
		return b
	}
	b.c.Weapon = def
	return b
}

// WithArmor equips armor at the fixed armor value.
func (b *Builder) WithArmor() *Builder {
	b.c.HasArmor = true
	b.c.ArmorValue = gamedata.ArmorValue
	return b
}

// Build returns the completed character, or the first error recorded while
// building.
func (b *Builder) Build() (*Character, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.c, nil
}

// fail records the first error encountered.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
