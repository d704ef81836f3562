package types

// ContactInfo is the lead's identity, collected on the contact step.
type ContactInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ContactPreferences records how and when the lead wants to be reached.
type ContactPreferences struct {
	Method           ContactMethod `json:"method"`
	BestTime         BestTime      `json:"bestTime"`
	ConsentToContact bool          `json:"consentToContact"`
}

// ContactPreferencesPatch is a partial update of ContactPreferences.
type ContactPreferencesPatch struct {
	Method           Opt[ContactMethod] `json:"method,omitzero"`
	BestTime         Opt[BestTime]      `json:"bestTime,omitzero"`
	ConsentToContact Opt[bool]          `json:"consentToContact,omitzero"`
}

// Mover is a moving company shown on the quotes step.
type Mover struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Logo            string     `json:"logo"`
	Specialty       string     `json:"specialty"`
	QuoteRange      PriceRange `json:"quoteRange"`
	MatchScore      int        `json:"matchScore"`
	MatchReasons    []string   `json:"matchReasons"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"reviewCount"`
	Credentials     []string   `json:"credentials"`
	AvailableOnDate bool       `json:"availableOnDate"`
}
