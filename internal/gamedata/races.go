package gamedata

// RaceDef defines a playable race loaded from JSON.
type RaceDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name (e.g., "Orc")
	Health      int    `json:"health"`      // Base hit points
	Strength    int    `json:"strength"`    // Base attack contribution
	DodgeChance int    `json:"dodgeChance"` // Chance to dodge an attack, in percent
}

// RacesFile represents the structure of races.json.
type RacesFile struct {
	Races []RaceDef `json:"races"`
}

// LoadRaces loads race definitions from the embedded races.json file.
func LoadRaces() ([]RaceDef, error) {
	file, err := Load[RacesFile]("races.json")
	if err != nil {
		return nil, err
	}
	return file.Races, nil
}

// MustLoadRaces loads race definitions, panicking on error.
func MustLoadRaces() []RaceDef {
	races, err := LoadRaces()
	if err != nil {
		panic(err)
	}
	return races
}
