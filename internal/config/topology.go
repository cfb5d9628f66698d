package config

// regionWorlds maps each data center to the worlds it contains. The per-world
// sale history table only covers the worlds of the configured home region.
var regionWorlds = map[string][]string{
	"Elemental": {"Aegis", "Atomos", "Carbuncle", "Garuda", "Gungnir", "Kujata", "Tonberry", "Typhon"},
	"Gaia":      {"Alexander", "Bahamut", "Durandal", "Fenrir", "Ifrit", "Ridill", "Tiamat", "Ultima"},
	"Mana":      {"Anima", "Asura", "Chocobo", "Hades", "Ixion", "Masamune", "Pandaemonium", "Titan"},
	"Meteor":    {"Belias", "Mandragora", "Ramuh", "Shinryu", "Unicorn", "Valefor", "Yojimbo", "Zeromus"},
}

// WorldsFor returns the worlds of a region, or nil for an unknown region.
func WorldsFor(region string) []string {
	return regionWorlds[region]
}
