package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
	"gorm.io/gorm"
)

// rogerLogoAlts identify a Rogers Bank statement page in either
// language.
var rogerLogoAlts = []string{"Rogers bank logo", "Logo de la Banque Rogers"}

// rogerHTMLFields is the exact number of text fields a transaction row
// flattens into.
const rogerHTMLFields = 7

// RogerHTML parses statement pages saved from the Rogers Bank web UI.
// The page has either one table (posted transactions only) or two, in
// which case the first holds pending transactions and is skipped. The
// card is identified from the cardholder selector on the page.
type RogerHTML struct{}

func (RogerHTML) Name() string {
	return "Roger HTML"
}

func (RogerHTML) Probe(file *File) bool {
	defer file.Rewind()

	name := strings.ToLower(file.Name)
	if !strings.HasSuffix(name, ".html") && !strings.HasSuffix(name, ".htm") {
		return false
	}

	doc, err := html.Parse(file.Reader)
	if err != nil {
		return false
	}

	for _, img := range findElements(doc, "img") {
		for _, alt := range rogerLogoAlts {
			if attr(img, "alt") == alt {
				return true
			}
		}
	}

	return false
}

func (RogerHTML) Parse(db *gorm.DB, file *File, source *models.Source) ([]Row, error) {
	doc, err := html.Parse(file.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	// One table means posted transactions only, two means a pending
	// section comes first
	var table *html.Node
	bodies := findElements(doc, "tbody")
	switch len(bodies) {
	case 1:
		table = bodies[0]
	case 2:
		table = bodies[1]
	default:
		return nil, fmt.Errorf("%w: posted transactions table not found in %s", ErrInvalidFile, file.Name)
	}

	cardNumber := ""
	for _, p := range findElements(doc, "p") {
		if attr(p, "aria-label") != "Selected cardholder" {
			continue
		}

		fields := strings.Fields(flatten(p))
		if len(fields) > 0 {
			cardNumber = strings.ReplaceAll(fields[len(fields)-1], ".", "")
		}
		break
	}
	if cardNumber == "" {
		return nil, fmt.Errorf("%w: card number not found in %s", ErrInvalidFile, file.Name)
	}

	var sources []models.Source
	if source != nil {
		sources = []models.Source{*source}
	} else {
		err := db.Where(&models.Source{Type: models.SourceTypeRoger}).Find(&sources).Error
		if err != nil {
			return nil, err
		}
	}

	var matched *models.Source
	for i := range sources {
		if sources[i].CardNumber == cardNumber {
			matched = &sources[i]
			break
		}
	}
	if matched == nil {
		return nil, fmt.Errorf("%w: no matching source found for card number %s", ErrNoSource, cardNumber)
	}

	var rows []Row
	trs := findElements(table, "tr")
	for i, tr := range trs {
		// The first row is the column header
		if i == 0 {
			continue
		}

		fields := textFields(tr)
		if len(fields) != rogerHTMLFields {
			return nil, fmt.Errorf("%w: invalid number of columns in row %q", ErrInvalidFile, strings.Join(fields, ";"))
		}

		date, err := time.Parse("Jan 2, 2006", fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: unparseable date %q", ErrInvalidFile, fields[0])
		}

		amount, err := decimal.NewFromString(cleanAmount(fields[5]))
		if err != nil {
			return nil, fmt.Errorf("%w: unparseable amount %q", ErrInvalidFile, fields[5])
		}

		rows = append(rows, Row{
			Description: fields[2],
			Amount:      amount,
			Date:        date,
			Category:    fields[3],
			SourceID:    matched.ID,
		})
	}

	log.Info().Str("file", file.Name).Str("card", cardNumber).Int("rows", len(rows)).Msg("extracted posted transactions")

	return rows, nil
}

// findElements returns all elements with the tag in document order.
func findElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return found
}

// attr returns the value of an attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

// flatten concatenates all text under a node.
func flatten(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return b.String()
}

// textFields collects the non-empty text nodes under a node, trimmed,
// in document order.
func textFields(n *html.Node) []string {
	var fields []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				fields = append(fields, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return fields
}
