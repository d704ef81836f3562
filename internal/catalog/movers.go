package catalog

import "movefunnel/internal/domain"

var movers = []domain.Mover{
	{
		ID:         "two_men_truck",
		Name:       "Two Men and a Truck",
		Logo:       "/logos/two-men.jpg",
		Specialty:  "Long-distance specialists",
		QuoteRange: domain.PriceRange{Min: 2400, Max: 2800},
		MatchScore: 94,
		MatchReasons: []string{
			"Highly rated for your route",
			"Piano moving specialists on staff",
			"Available on your date",
			"Includes packing service",
		},
		Rating:          4.8,
		ReviewCount:     2340,
		Credentials:     []string{"A+ BBB", "Licensed & Insured"},
		AvailableOnDate: true,
	},
	{
		ID:         "allied",
		Name:       "Allied Van Lines",
		Logo:       "/logos/allied.png",
		Specialty:  "Full-service moving",
		QuoteRange: domain.PriceRange{Min: 2600, Max: 3200},
		MatchScore: 88,
		MatchReasons: []string{
			"National network coverage",
			"Premium packing materials",
			"Tracking technology",
		},
		Rating:          4.6,
		ReviewCount:     1890,
		Credentials:     []string{"A+ BBB", "ProMover Certified"},
		AvailableOnDate: true,
	},
	{
		ID:         "college_hunks",
		Name:       "College Hunks",
		Logo:       "/logos/college-hunks.png",
		Specialty:  "Local & long-distance",
		QuoteRange: domain.PriceRange{Min: 2200, Max: 2600},
		MatchScore: 85,
		MatchReasons: []string{
			"Competitive pricing",
			"Eco-friendly options",
			"Junk removal available",
		},
		Rating:          4.5,
		ReviewCount:     3200,
		Credentials:     []string{"Licensed & Insured"},
		AvailableOnDate: true,
	},
	{
		ID:         "local_movers",
		Name:       "Austin Pro Moving",
		Logo:       "/logos/austin-pro-moving.png",
		Specialty:  "Local experts",
		QuoteRange: domain.PriceRange{Min: 2100, Max: 2500},
		MatchScore: 82,
		MatchReasons: []string{
			"Local expertise",
			"Flexible scheduling",
			"Family-owned business",
		},
		Rating:          4.7,
		ReviewCount:     890,
		Credentials:     []string{"Licensed & Insured", "Local Chamber Member"},
		AvailableOnDate: true,
	},
}

// Movers returns the mock mover roster in listing order.
func Movers() []domain.Mover {
	out := make([]domain.Mover, len(movers))
	for i, m := range movers {
		m.MatchReasons = append([]string(nil), m.MatchReasons...)
		m.Credentials = append([]string(nil), m.Credentials...)
		out[i] = m
	}
	return out
}

// IsMover reports whether id names a mover in the roster.
func IsMover(id string) bool {
	for _, m := range movers {
		if m.ID == id {
			return true
		}
	}
	return false
}
