// Package combat provides attack resolution between battle combatants.
package combat

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/battleband/internal/battlelog"
	"github.com/samdwyer/battleband/internal/gamedata"
	"github.com/samdwyer/battleband/internal/logging"
)

// Combatant is the interface for any entity that can take part in a battle.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	DisplayHP() int
	GetStrength() int
	GetWeapon() *gamedata.WeaponDef // nil when unarmed
	GetArmorValue() int
	GetDodgeChance() int

	// Mutations
	TakeDamage(amount int) int // Returns the damage applied
	RecordDodge()
	GetDodgeCount() int
}

// Roller produces dodge rolls, uniform in [0, 100). Tests substitute fixed
// implementations to force or forbid dodges.
type Roller interface {
	Roll() float64
}

type randRoller struct {
	rng *rand.Rand
}

func (r randRoller) Roll() float64 {
	return r.rng.Float64() * 100
}

// NewRoller wraps a seeded RNG as a dodge roller.
func NewRoller(rng *rand.Rand) Roller {
	return randRoller{rng: rng}
}

// Separator closes each resolved attack in the narrative log.
const Separator = "----------------------------------------"

// Resolver applies single attacks between combatants, narrating each step to
// the battle log.
type Resolver struct {
	roller Roller
	log    *battlelog.Sink
}

// NewResolver creates a resolver using the given dodge roller and log sink.
func NewResolver(roller Roller, log *battlelog.Sink) *Resolver {
	return &Resolver{
		roller: roller,
		log:    log,
	}
}

// Attack resolves a single attack from attacker against defender. The call is
// a no-op when either side is already dead. A successful dodge negates the
// attack entirely; otherwise damage is strength plus weapon bonus, reduced by
// the defender's armor down to a floor of 1.
func (r *Resolver) Attack(attacker, defender Combatant) {
	if !attacker.IsAlive() || !defender.IsAlive() {
		return
	}

	roll := r.roller.Roll()
	if roll <= float64(defender.GetDodgeChance()) {
		defender.RecordDodge()
		r.log.Logf("» %s dodges the attack from %s!", defender.GetName(), attacker.GetName())
		logging.Log.WithFields(logrus.Fields{
			"attacker": attacker.GetName(),
			"defender": defender.GetName(),
			"roll":     roll,
		}).Debug("Attack dodged.")
		return
	}

	base := attacker.GetStrength()
	weaponDamage := 0
	r.log.Logf("⚔ %s attacks %s!", attacker.GetName(), defender.GetName())
	if weapon := attacker.GetWeapon(); weapon != nil {
		weaponDamage = weapon.Damage
		base += weaponDamage
		r.log.Logf("  %d strength + %d (%s) = %d base damage",
			attacker.GetStrength(), weapon.Damage, weapon.Name, base)
	} else {
		r.log.Logf("  %d strength, no weapon = %d base damage",
			attacker.GetStrength(), base)
	}

	final := base - defender.GetArmorValue()
	if final < 1 {
		final = 1
	}
	r.log.Logf("  armor neutralizes %d damage", base-final)

	defender.TakeDamage(final)
	r.log.Logf("  %s takes %d damage", defender.GetName(), final)
	r.log.Logf("  %s: %d/%d HP", defender.GetName(), defender.DisplayHP(), defender.GetMaxHP())

	if !defender.IsAlive() {
		r.log.Logf("☠ %s has fallen!", defender.GetName())
	}
	r.log.Log(Separator)

	logging.Log.WithFields(logrus.Fields{
		"attacker":      attacker.GetName(),
		"defender":      defender.GetName(),
		"base_damage":   attacker.GetStrength(),
		"weapon_damage": weaponDamage,
		"armor":         defender.GetArmorValue(),
		"final_damage":  final,
		"defender_died": !defender.IsAlive(),
	}).Debug("Attack resolved.")
}
