package models

// HistoryRow is one (shipment x user) pair of the history view.
type HistoryRow struct {
	TrackingID      string         `json:"tracking_id"`
	RequestPlatform string         `json:"request_platform"`
	CompanyName     string         `json:"company_name"`
	User            string         `json:"user"`
	TokenNumber     string         `json:"token_number"`
	Status          ShipmentStatus `json:"status"`
	Date            string         `json:"date"`
	AdminName       string         `json:"admin_name,omitempty"`
}
