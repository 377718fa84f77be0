package battle

import "github.com/samdwyer/battleband/internal/entity"

// reportStats logs each participant's dodge tally in original roster order,
// followed by the overall and elf-only totals. Eliminated participants are
// included.
func (b *Battle) reportStats() {
	b.log.Log("≡ Dodge statistics:")

	total := 0
	elfTotal := 0
	for _, c := range b.participants {
		b.log.Logf("  %s dodged %d attacks", c.GetName(), c.GetDodgeCount())
		total += c.GetDodgeCount()
		if c.Race == entity.RaceElf {
			elfTotal += c.GetDodgeCount()
		}
	}

	b.log.Logf("  total dodges: %d", total)
	b.log.Logf("  elf dodges: %d", elfTotal)
}
