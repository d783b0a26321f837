package schemas

import "github.com/Bessima/token-shipping/internal/models"

type CreateShipmentRequest struct {
	TrackingID      string   `json:"tracking_id"`
	AdminName       string   `json:"admin_name"`
	RequestPlatform string   `json:"request_platform"`
	OtherPlatform   string   `json:"other_platform,omitempty"`
	CompanyName     string   `json:"company_name"`
	Users           []string `json:"users"`
	TokenNumbers    []string `json:"token_numbers"`
}

type ShipmentResponse struct {
	Position     int             `json:"position"`
	Shipment     models.Shipment `json:"shipment"`
	ManifestPath string          `json:"manifest_path,omitempty"`
}

// WorklistItem is a pending shipment as seen by one processor session.
type WorklistItem struct {
	Position       int             `json:"position"`
	Shipment       models.Shipment `json:"shipment"`
	ShipDisabled   bool            `json:"ship_disabled"`
	CancelDisabled bool            `json:"cancel_disabled"`
}

type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
