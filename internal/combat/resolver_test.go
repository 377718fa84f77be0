package combat

import (
	"strings"
	"testing"

	"github.com/samdwyer/battleband/internal/battlelog"
	"github.com/samdwyer/battleband/internal/gamedata"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name        string
	hp, maxHP   int
	strength    int
	weapon      *gamedata.WeaponDef
	armorValue  int
	dodgeChance int
	dodgeCount  int
}

func newMockCombatant(name string, hp, strength int) *mockCombatant {
	return &mockCombatant{
		name:     name,
		hp:       hp,
		maxHP:    hp,
		strength: strength,
	}
}

func (m *mockCombatant) GetName() string                { return m.name }
func (m *mockCombatant) IsAlive() bool                  { return m.hp > 0 }
func (m *mockCombatant) GetHP() int                     { return m.hp }
func (m *mockCombatant) GetMaxHP() int                  { return m.maxHP }
func (m *mockCombatant) GetStrength() int               { return m.strength }
func (m *mockCombatant) GetWeapon() *gamedata.WeaponDef { return m.weapon }
func (m *mockCombatant) GetArmorValue() int             { return m.armorValue }
func (m *mockCombatant) GetDodgeChance() int            { return m.dodgeChance }
func (m *mockCombatant) RecordDodge()                   { m.dodgeCount++ }
func (m *mockCombatant) GetDodgeCount() int             { return m.dodgeCount }

func (m *mockCombatant) DisplayHP() int {
	if m.hp < 0 {
		return 0
	}
	return m.hp
}

func (m *mockCombatant) TakeDamage(amount int) int {
	m.hp -= amount
	return amount
}

// Ensure mockCombatant implements Combatant
var _ Combatant = (*mockCombatant)(nil)

// fixedRoller always returns the same dodge roll.
type fixedRoller struct {
	roll float64
}

func (f fixedRoller) Roll() float64 { return f.roll }

func newResolver(roll float64) (*Resolver, *battlelog.Sink) {
	sink := battlelog.New(nil)
	return NewResolver(fixedRoller{roll: roll}, sink), sink
}

func TestAttackNoOpWhenAttackerDead(t *testing.T) {
	resolver, sink := newResolver(50)
	attacker := newMockCombatant("Dead", 0, 10)
	defender := newMockCombatant("Target", 30, 10)

	resolver.Attack(attacker, defender)

	if defender.GetHP() != 30 {
		t.Errorf("Defender took damage from a dead attacker: HP %d", defender.GetHP())
	}
	if sink.Len() != 0 {
		t.Errorf("Expected no log entries, got %d", sink.Len())
	}
}

func TestAttackNoOpWhenDefenderDead(t *testing.T) {
	resolver, sink := newResolver(50)
	attacker := newMockCombatant("Attacker", 30, 10)
	defender := newMockCombatant("Corpse", 0, 10)

	resolver.Attack(attacker, defender)

	if defender.GetHP() != 0 {
		t.Errorf("Dead defender's HP changed: %d", defender.GetHP())
	}
	if sink.Len() != 0 {
		t.Errorf("Expected no log entries, got %d", sink.Len())
	}
}

func TestDodgeNegatesAttack(t *testing.T) {
	// A roll of 0 is dodged by any defender with a positive dodge chance.
	resolver, sink := newResolver(0)
	attacker := newMockCombatant("Attacker", 30, 10)
	defender := newMockCombatant("Dodger", 30, 10)
	defender.dodgeChance = 5

	resolver.Attack(attacker, defender)

	if defender.GetHP() != 30 {
		t.Errorf("Dodged attack dealt damage: HP %d", defender.GetHP())
	}
	if defender.GetDodgeCount() != 1 {
		t.Errorf("Expected dodge count 1, got %d", defender.GetDodgeCount())
	}
	lines := sink.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "dodges") {
		t.Errorf("Expected a single dodge line, got %v", lines)
	}
}

func TestHighRollOnlyDodgedAtFullChance(t *testing.T) {
	attacker := newMockCombatant("Attacker", 30, 10)

	almost := newMockCombatant("Almost", 30, 10)
	almost.dodgeChance = 99
	resolver, _ := newResolver(99.999)
	resolver.Attack(attacker, almost)
	if almost.GetDodgeCount() != 0 {
		t.Error("dodgeChance 99 dodged a 99.999 roll")
	}

	certain := newMockCombatant("Certain", 30, 10)
	certain.dodgeChance = 100
	resolver, _ = newResolver(99.999)
	resolver.Attack(attacker, certain)
	if certain.GetDodgeCount() != 1 {
		t.Error("dodgeChance 100 failed to dodge a 99.999 roll")
	}
	if certain.GetHP() != 30 {
		t.Errorf("Dodged attack dealt damage: HP %d", certain.GetHP())
	}
}

func TestUnarmedAttackUsesStrengthAlone(t *testing.T) {
	resolver, _ := newResolver(50)
	attacker := newMockCombatant("Attacker", 30, 12)
	defender := newMockCombatant("Defender", 30, 10)

	resolver.Attack(attacker, defender)

	if defender.GetHP() != 18 {
		t.Errorf("Expected 12 damage, defender HP 18, got %d", defender.GetHP())
	}
}

func TestWeaponAddsDamage(t *testing.T) {
	resolver, sink := newResolver(50)
	attacker := newMockCombatant("Attacker", 30, 12)
	attacker.weapon = &gamedata.WeaponDef{ID: "sword", Name: "Sword", Damage: 12}
	defender := newMockCombatant("Defender", 60, 10)

	resolver.Attack(attacker, defender)

	if defender.GetHP() != 36 {
		t.Errorf("Expected 24 damage, defender HP 36, got %d", defender.GetHP())
	}

	// The formula breakdown names the weapon and its damage.
	found := false
	for _, line := range sink.Lines() {
		if strings.Contains(line, "12 (Sword)") && strings.Contains(line, "= 24 base damage") {
			found = true
		}
	}
	if !found {
		t.Errorf("Formula breakdown missing from log: %v", sink.Lines())
	}
}

func TestArmorReducesDamage(t *testing.T) {
	resolver, _ := newResolver(50)
	attacker := newMockCombatant("Attacker", 30, 20)
	defender := newMockCombatant("Defender", 60, 10)
	defender.armorValue = 5

	resolver.Attack(attacker, defender)

	if defender.GetHP() != 45 {
		t.Errorf("Expected 15 damage, defender HP 45, got %d", defender.GetHP())
	}
}

func TestDamageFloorUnderHeavyArmor(t *testing.T) {
	// Armor can never reduce a hit below 1 damage.
	resolver, _ := newResolver(50)
	attacker := newMockCombatant("Attacker", 30, 10)
	defender := newMockCombatant("Defender", 30, 10)
	defender.armorValue = 20

	for i := 0; i < 3; i++ {
		resolver.Attack(attacker, defender)
	}

	if defender.GetHP() != 27 {
		t.Errorf("Expected exactly 1 damage per hit, defender HP 27, got %d", defender.GetHP())
	}
}

func TestKillingBlowLogsDeathAndClampsDisplay(t *testing.T) {
	resolver, sink := newResolver(50)
	attacker := newMockCombatant("Attacker", 30, 25)
	defender := newMockCombatant("Victim", 10, 10)

	resolver.Attack(attacker, defender)

	// Stored health keeps the exact accounting; only the display clamps.
	if defender.GetHP() != -15 {
		t.Errorf("Expected raw HP -15, got %d", defender.GetHP())
	}
	if defender.DisplayHP() != 0 {
		t.Errorf("Expected display HP 0, got %d", defender.DisplayHP())
	}
	if defender.IsAlive() {
		t.Error("Defender should be dead")
	}

	lines := sink.Lines()
	foundDeath := false
	foundClamped := false
	for _, line := range lines {
		if strings.Contains(line, "has fallen") {
			foundDeath = true
		}
		if strings.Contains(line, "Victim: 0/10 HP") {
			foundClamped = true
		}
	}
	if !foundDeath {
		t.Errorf("Death announcement missing: %v", lines)
	}
	if !foundClamped {
		t.Errorf("Clamped health line missing: %v", lines)
	}
	if lines[len(lines)-1] != Separator {
		t.Errorf("Expected separator as final line, got %q", lines[len(lines)-1])
	}
}
