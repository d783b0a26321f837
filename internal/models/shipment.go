package models

// DateLayout is the creation timestamp format stored in Shipment.Date.
const DateLayout = "2006-01-02 15:04:05"

type ShipmentStatus string

const (
	PendingStatus   ShipmentStatus = "Pending"
	ShippedStatus   ShipmentStatus = "Shipped"
	CancelledStatus ShipmentStatus = "Cancelled"
)

// IsTerminal reports whether no further transition is allowed from the status.
func (status ShipmentStatus) IsTerminal() bool {
	return status == ShippedStatus || status == CancelledStatus
}

type Shipment struct {
	TrackingID      string         `json:"tracking_id"`
	AdminName       string         `json:"admin_name"`
	RequestPlatform string         `json:"request_platform"`
	CompanyName     string         `json:"company_name"`
	Users           []string       `json:"users"`
	TokenNumbers    []string       `json:"token_numbers"`
	Status          ShipmentStatus `json:"status"`
	Date            string         `json:"date"`
}

// Assignment is one user paired with the token shipped to them.
type Assignment struct {
	User        string `json:"user"`
	TokenNumber string `json:"token_number"`
}

func (shipment Shipment) IsPending() bool {
	return shipment.Status == PendingStatus
}

// Assignments zips users with token numbers, stopping at the shorter list.
func (shipment Shipment) Assignments() []Assignment {
	n := min(len(shipment.Users), len(shipment.TokenNumbers))
	assignments := make([]Assignment, 0, n)
	for i := 0; i < n; i++ {
		assignments = append(assignments, Assignment{User: shipment.Users[i], TokenNumber: shipment.TokenNumbers[i]})
	}
	return assignments
}

// Clone returns a copy that shares no slices with the receiver.
func (shipment Shipment) Clone() Shipment {
	clone := shipment
	clone.Users = append([]string(nil), shipment.Users...)
	clone.TokenNumbers = append([]string(nil), shipment.TokenNumbers...)
	return clone
}

// StoredShipment is a shipment together with its position in the collection.
// Records are never deleted, so the position identifies a record.
type StoredShipment struct {
	Position int      `json:"position"`
	Shipment Shipment `json:"shipment"`
}
