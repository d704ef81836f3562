package types

// Address is a geocoded origin or destination.
type Address struct {
	Street      string   `json:"street,omitempty"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Zip         string   `json:"zip"`
	FullAddress string   `json:"fullAddress"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// LongDistanceMiles is the distance above which a move is long distance.
const LongDistanceMiles = 100

// RouteInfo describes the drive between the two addresses.
type RouteInfo struct {
	Distance       float64 `json:"distance"` // miles
	Duration       float64 `json:"duration"` // hours
	IsLongDistance bool    `json:"isLongDistance"`
}

// MoveBasics holds the coarse facts gathered before inventory.
type MoveBasics struct {
	FromAddress *Address   `json:"fromAddress"`
	ToAddress   *Address   `json:"toAddress"`
	RouteInfo   *RouteInfo `json:"routeInfo"`
	MoveDate    string     `json:"moveDate"` // YYYY-MM-DD; empty when undecided
	IsFlexible  bool       `json:"isFlexible"`
	HomeSize    HomeSize   `json:"homeSize"`
}

// BasicsPatch is a partial update of MoveBasics.
type BasicsPatch struct {
	FromAddress Opt[*Address]   `json:"fromAddress,omitzero"`
	ToAddress   Opt[*Address]   `json:"toAddress,omitzero"`
	RouteInfo   Opt[*RouteInfo] `json:"routeInfo,omitzero"`
	MoveDate    Opt[string]     `json:"moveDate,omitzero"`
	IsFlexible  Opt[bool]       `json:"isFlexible,omitzero"`
	HomeSize    Opt[HomeSize]   `json:"homeSize,omitzero"`
}

// Distance returns the route distance in miles, or zero when no route is known.
func (b MoveBasics) Distance() float64 {
	if b.RouteInfo == nil {
		return 0
	}
	return b.RouteInfo.Distance
}
