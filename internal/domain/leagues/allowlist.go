package leagues

// Descriptor carries the curated metadata for an allow-listed league:
// the country and display priority shown to users, plus an optional
// canonical name override when the upstream name is noisy.
type Descriptor struct {
	Country  string
	Priority int
	Name     string
}

// DefaultPriority is assigned to any league missing from the allow-list.
// Filtering happens before priorities are read, so it should never be
// visible in served payloads.
const DefaultPriority = 99

// Allowlist restricts which upstream leagues are ever surfaced and fixes
// their display order. It is injected configuration: handed to the
// fixture service at wiring time so tests can substitute their own table.
type Allowlist map[int64]Descriptor

func (a Allowlist) Contains(leagueID int64) bool {
	_, ok := a[leagueID]
	return ok
}

func (a Allowlist) Lookup(leagueID int64) (Descriptor, bool) {
	d, ok := a[leagueID]
	return d, ok
}

// Priority returns the curated priority, or DefaultPriority for leagues
// outside the table.
func (a Allowlist) Priority(leagueID int64) int {
	if d, ok := a[leagueID]; ok {
		return d.Priority
	}
	return DefaultPriority
}

// Default returns the curated set of top-tier competitions served by the
// product. League ids follow the upstream provider's numbering.
func Default() Allowlist {
	return Allowlist{
		// Brazil
		99:  {Country: "Brazil", Priority: 1, Name: "Serie A"},
		100: {Country: "Brazil", Priority: 2, Name: "Serie B"},
		97:  {Country: "Brazil", Priority: 3, Name: "Copa do Brasil"},
		// England
		152: {Country: "England", Priority: 4, Name: "Premier League"},
		153: {Country: "England", Priority: 10, Name: "Championship"},
		146: {Country: "England", Priority: 14, Name: "FA Cup"},
		// Spain
		302: {Country: "Spain", Priority: 5, Name: "La Liga"},
		301: {Country: "Spain", Priority: 15, Name: "Copa del Rey"},
		// Italy
		207: {Country: "Italy", Priority: 6, Name: "Serie A"},
		206: {Country: "Italy", Priority: 16, Name: "Coppa Italia"},
		// Germany
		175: {Country: "Germany", Priority: 7, Name: "Bundesliga"},
		171: {Country: "Germany", Priority: 17, Name: "DFB Pokal"},
		// France
		168: {Country: "France", Priority: 8, Name: "Ligue 1"},
		// Portugal
		266: {Country: "Portugal", Priority: 9, Name: "Primeira Liga"},
		// International club cups
		3:   {Country: "Europe", Priority: 11, Name: "Champions League"},
		4:   {Country: "Europe", Priority: 12, Name: "Europa League"},
		683: {Country: "South America", Priority: 13, Name: "Copa Libertadores"},
	}
}
