package manifest

import (
	"fmt"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
	"golang.org/x/text/encoding/charmap"
)

const (
	UserColumnTitle  = "USER NAME"
	TokenColumnTitle = "TOKEN NUMBER"

	ManualTitle = "User Manual"
	ManualText  = "This is the user manual for the shipment process. Please ensure that all details are correctly filled out and verify shipment information before marking it as shipped."
)

// Layout is the content of a manifest independent of how it is drawn.
type Layout struct {
	CompanyLine  string
	TrackingLine string
	Columns      [2]string
	Rows         []models.Assignment
	ManualTitle  string
	ManualText   string
}

func NewLayout(shipment models.Shipment) Layout {
	return Layout{
		CompanyLine:  fmt.Sprintf("COMPANY NAME: %s", shipment.CompanyName),
		TrackingLine: fmt.Sprintf("TRACKING ID: %s", shipment.TrackingID),
		Columns:      [2]string{UserColumnTitle, TokenColumnTitle},
		Rows:         shipment.Assignments(),
		ManualTitle:  ManualTitle,
		ManualText:   ManualText,
	}
}

// Check reports every value the cp1252 core fonts can not draw. A manifest
// with such a value would silently differ from its record.
func (layout Layout) Check() error {
	var messages []string
	check := func(value, name string) {
		if !printable(value) {
			messages = append(messages, fmt.Sprintf("%s contains characters the manifest can not print: %q.", name, value))
		}
	}

	check(layout.CompanyLine, "Company Name")
	check(layout.TrackingLine, "Tracking ID")
	for i, row := range layout.Rows {
		check(row.User, fmt.Sprintf("User %d Name", i+1))
		check(row.TokenNumber, fmt.Sprintf("Token Number %d", i+1))
	}

	if len(messages) > 0 {
		return customerror.NewValidationError(messages)
	}
	return nil
}

func printable(value string) bool {
	for _, r := range value {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}
