package catalog

// Names and places used by the social-proof activity ticker.
var (
	TickerNames = []string{
		"Sarah", "Mike", "Jennifer", "David", "Amanda",
		"Chris", "Lisa", "Marcus", "Emily", "Jason",
		"Rachel", "Kevin", "Nicole", "Brandon", "Ashley",
	}
	TickerCities = []string{
		"Austin", "Denver", "Phoenix", "Portland", "Seattle",
		"Nashville", "Charlotte", "Atlanta", "Dallas", "Chicago",
		"NYC", "Boston", "Miami", "San Diego", "Minneapolis",
	}
	TickerDestinations = []string{
		"Denver", "Austin", "Phoenix", "Seattle", "Portland",
		"Nashville", "Atlanta", "Charlotte", "Dallas", "Chicago",
		"Boston", "Tampa", "San Francisco", "Raleigh", "Salt Lake City",
	}
)
