// Package extractor turns uploaded statement files into canonical
// expense rows.
//
// Each institution format is a Parser. Parsers can cheaply probe a file
// to claim it in auto-detect mode and fully parse it into rows. The
// registry maps a known source type and file extension to a parser
// directly, or probes every parser when no source is given.
package extractor

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Row is a normalized statement line. A positive amount is an outgoing
// expense, a negative amount a credit or refund.
type Row struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	SourceID    uuid.UUID
}

// File is an uploaded statement file.
type File struct {
	Name   string
	Reader io.ReadSeeker
}

// Rewind resets the read position. Probes call this so that parsing
// sees the file from the start.
func (f *File) Rewind() error {
	_, err := f.Reader.Seek(0, io.SeekStart)
	return err
}

// Parser extracts expense rows from one institution's export format.
type Parser interface {
	// Name identifies the parser in failure messages.
	Name() string

	// Probe reports whether the file structurally matches the format.
	// It must restore the file's read position.
	Probe(file *File) bool

	// Parse reads the whole file into rows. source is the explicitly
	// selected source, or nil when the parser has to resolve it.
	Parse(db *gorm.DB, file *File, source *models.Source) ([]Row, error)
}

// All returns the registered parsers in probe order.
func All() []Parser {
	return []Parser{
		BNC{},
		Roger{},
		Triangle{},
		Tangerine{},
		RogerHTML{},
	}
}

// ForSource selects the parser for a file with a known source. The
// source type together with the file extension determines the parser.
func ForSource(source models.Source, filename string) (Parser, error) {
	name := strings.ToLower(filename)

	switch {
	case source.Type == models.SourceTypeBNC && strings.HasSuffix(name, ".csv"):
		return BNC{}, nil
	case source.Type == models.SourceTypeRoger && strings.HasSuffix(name, ".csv"):
		return Roger{}, nil
	case source.Type == models.SourceTypeRoger && (strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")):
		return RogerHTML{}, nil
	case source.Type == models.SourceTypeTriangle && strings.HasSuffix(name, ".csv"):
		return Triangle{}, nil
	case source.Type == models.SourceTypeTangerine && strings.HasSuffix(name, ".csv"):
		return Tangerine{}, nil
	}

	return nil, fmt.Errorf("%w: %s is not supported for source type %s", ErrUnsupportedFormat, filename, source.Type)
}

// Detect probes every registered parser and returns the single match.
//
// Zero matches is an unsupported format. Several matches mean the file
// is ambiguous; the error names all claiming parsers instead of
// guessing.
func Detect(file *File) (Parser, error) {
	var matches []Parser
	for _, parser := range All() {
		if parser.Probe(file) {
			matches = append(matches, parser)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrUnsupportedFormat, file.Name)
	}

	if len(matches) > 1 {
		names := make([]string, 0, len(matches))
		for _, parser := range matches {
			names = append(names, parser.Name())
		}

		return nil, fmt.Errorf("%w: %s matches %s", ErrAmbiguousFormat, file.Name, strings.Join(names, ", "))
	}

	return matches[0], nil
}

// resolveSingleSource finds the only source of an institution type.
// Formats without a card number in the file cannot disambiguate, so
// anything but exactly one candidate is an error.
func resolveSingleSource(db *gorm.DB, sourceType string) (models.Source, error) {
	var sources []models.Source
	err := db.Where(&models.Source{Type: sourceType}).Find(&sources).Error
	if err != nil {
		return models.Source{}, err
	}

	if len(sources) == 0 {
		return models.Source{}, fmt.Errorf("%w: no source found for type %s", ErrNoSource, sourceType)
	}

	if len(sources) > 1 {
		return models.Source{}, fmt.Errorf("%w: multiple sources found for type %s and the file carries no card number", ErrAmbiguousSource, sourceType)
	}

	return sources[0], nil
}
