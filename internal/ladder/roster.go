package ladder

// DefaultRoster is the placeholder roster shown before any club member has
// signed up. The ö/å/ä names double as a collation check.
func DefaultRoster() []Player {
	return []Player{
		{Id: "demo-anna", Name: "Anna Andersson"},
		{Id: "demo-bjorn", Name: "Björn Berg"},
		{Id: "demo-cecilia", Name: "Cecilia Ek"},
		{Id: "demo-david", Name: "David Dahl"},
		{Id: "demo-elin", Name: "Elin Ström"},
		{Id: "demo-asa", Name: "Åsa Öberg"},
	}
}
