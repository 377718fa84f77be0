package entity

import (
	"github.com/samdwyer/battleband/internal/combat"
	"github.com/samdwyer/battleband/internal/gamedata"
)

// Character represents an individual battle combatant.
//
// HP holds the exact damage accounting and may go negative after a killing
// blow; DisplayHP clamps for presentation. MaxHP is fixed at build time.
type Character struct {
	Name string
	Race Race

	// Combat stats
	HP, MaxHP   int
	Strength    int
	Weapon      *gamedata.WeaponDef // nil when unarmed
	HasArmor    bool
	ArmorValue  int
	DodgeChance int

	dodgeCount int
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP, which may be negative after a killing blow.
func (c *Character) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Character) GetMaxHP() int { return c.MaxHP }

// DisplayHP returns current HP clamped to zero for presentation.
func (c *Character) DisplayHP() int {
	if c.HP < 0 {
		return 0
	}
	return c.HP
}

// GetStrength returns the strength stat.
func (c *Character) GetStrength() int { return c.Strength }

// GetWeapon returns the equipped weapon, or nil when unarmed.
func (c *Character) GetWeapon() *gamedata.WeaponDef { return c.Weapon }

// GetArmorValue returns the flat damage reduction from armor, 0 without armor.
func (c *Character) GetArmorValue() int { return c.ArmorValue }

// GetDodgeChance returns the dodge chance in percent.
func (c *Character) GetDodgeChance() int { return c.DodgeChance }

// TakeDamage reduces HP without clamping and returns the damage applied.
func (c *Character) TakeDamage(amount int) int {
	c.HP -= amount
	return amount
}

// RecordDodge increments the dodge tally.
func (c *Character) RecordDodge() { c.dodgeCount++ }

// GetDodgeCount returns the number of successful dodges.
func (c *Character) GetDodgeCount() int { return c.dodgeCount }

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
