package models

import (
	"strings"

	"gorm.io/gorm"
)

// Institution types. The type together with the uploaded file's
// extension selects the statement parser.
const (
	SourceTypeBNC       = "BNC"
	SourceTypeRoger     = "ROGER"
	SourceTypeTriangle  = "TRIANGLE"
	SourceTypeTangerine = "TANGERINE"
)

// Source is a funding instrument, e.g. a bank account or a credit card.
type Source struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Type string // Institution type, see the SourceType constants
	// Last digits of the card number. Used to pick the right source when
	// an institution has several cards and the file carries a card token.
	CardNumber string
}

func (s Source) Self() string {
	return "Source"
}

func (s *Source) BeforeSave(_ *gorm.DB) (err error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Type = strings.ToUpper(strings.TrimSpace(s.Type))
	s.CardNumber = strings.TrimSpace(s.CardNumber)
	return nil
}
