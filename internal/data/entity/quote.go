package entity

type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusScheduled QuoteStatus = "scheduled"
	QuoteStatusCompleted QuoteStatus = "completed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// QuoteStatuses lists every accepted status. Any status may move to any other.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusNew,
	QuoteStatusContacted,
	QuoteStatusScheduled,
	QuoteStatusCompleted,
	QuoteStatusCancelled,
}

func (s QuoteStatus) IsValid() bool {
	for _, v := range QuoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

const (
	HomeSizeStudio       = "studio"
	HomeSizeOneBedroom   = "1-bedroom"
	HomeSizeTwoBedroom   = "2-bedroom"
	HomeSizeThreeBedroom = "3-bedroom"
	HomeSizeFourBedroom  = "4-bedroom"
	HomeSizeFivePlus     = "5-bedroom-plus"
)

const (
	ServicePacking   = "packing"
	ServiceUnpacking = "unpacking"
	ServiceStorage   = "storage"
)

type QuoteRequest struct {
	BaseSimple
	FirstName       string      `db:"first_name"`
	LastName        string      `db:"last_name"`
	Email           string      `db:"email"`
	Phone           string      `db:"phone"`
	FromAddress     string      `db:"from_address"`
	FromZip         string      `db:"from_zip"`
	ToAddress       string      `db:"to_address"`
	ToZip           string      `db:"to_zip"`
	MoveDate        string      `db:"move_date"` // YYYY-MM-DD
	HomeSize        string      `db:"home_size"`
	HomeType        string      `db:"home_type"`
	Services        []string    `db:"services"`
	SpecialRequests *string     `db:"special_requests"`
	Distance        int         `db:"distance"`
	BasePrice       int         `db:"base_price"`
	DistancePrice   int         `db:"distance_price"`
	TotalEstimate   int         `db:"total_estimate"`
	Status          QuoteStatus `db:"status"`
}

// Clone returns a deep copy so stored records never alias caller memory.
func (q *QuoteRequest) Clone() *QuoteRequest {
	c := *q
	if q.Services != nil {
		c.Services = append([]string(nil), q.Services...)
	}
	if q.SpecialRequests != nil {
		s := *q.SpecialRequests
		c.SpecialRequests = &s
	}
	return &c
}
