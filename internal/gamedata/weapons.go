package gamedata

// ArmorValue is the flat damage reduction granted by armor. Armor is all or
// nothing: a combatant either carries it at this value or has none.
const ArmorValue = 5

// WeaponDef defines a weapon loaded from JSON. Weapons are stateless values;
// a combatant without one simply adds no bonus damage.
type WeaponDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "sword")
	Name   string `json:"name"`   // Display name (e.g., "Sword")
	Damage int    `json:"damage"` // Flat bonus damage added to the wielder's strength
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}

// MustLoadWeapons loads weapon definitions, panicking on error.
func MustLoadWeapons() []WeaponDef {
	weapons, err := LoadWeapons()
	if err != nil {
		panic(err)
	}
	return weapons
}
