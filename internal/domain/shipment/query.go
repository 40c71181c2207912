package shipment

import (
	"strings"
	"time"
)

// Field names a record attribute a regex conjunct applies to.
type Field string

const (
	FieldHSCode          Field = "hs_code"
	FieldItemDescription Field = "item_description"
	FieldBuyerName       Field = "buyer_name"
	FieldSupplierName    Field = "supplier_name"
	FieldOriginPort      Field = "origin_port"
	FieldUnit            Field = "unit"
	FieldCountry         Field = "country"
)

// SearchQuery is a normalized, validated search request. At least one of
// HSCode or ProductName is set; the date range is inclusive on both ends.
type SearchQuery struct {
	HSCode      string
	ProductName string

	BuyerName    string
	SupplierName string
	PortCode     string
	Unit         string
	Country      string

	StartDate time.Time
	EndDate   time.Time
}

// Validate checks the cross-field invariants of the query.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.HSCode) == "" && strings.TrimSpace(q.ProductName) == "" {
		return ErrEmptySearchText
	}
	if q.EndDate.Before(q.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// FieldPattern is one case-insensitive regex conjunct of a predicate.
type FieldPattern struct {
	Field   Field
	Pattern string
}

// Predicate is the storage-layer filter built from a SearchQuery.
// Every regex conjunct is case-insensitive; the date range is inclusive.
// Conjuncts for absent or blank inputs are not present at all.
type Predicate struct {
	conjuncts []FieldPattern

	DateFrom time.Time
	DateTo   time.Time
}

// RegexConjuncts returns the regex conjuncts in a fixed field order.
func (p Predicate) RegexConjuncts() []FieldPattern {
	return p.conjuncts
}

// BuildPredicate translates a search query into a predicate.
//
// The classification code becomes an anchored prefix pattern and is not
// regex-escaped: codes are numeric and the anchor must stay a
// metacharacter. Every other value is escaped so it matches itself
// literally as a substring. Blank values produce no conjunct; a pattern
// that would match any string is dropped rather than kept as a no-op.
// The builder is pure: equal queries always yield equal predicates.
func BuildPredicate(q SearchQuery) Predicate {
	p := Predicate{
		DateFrom: q.StartDate,
		DateTo:   q.EndDate,
	}

	if code := strings.TrimSpace(q.HSCode); code != "" {
		p.conjuncts = append(p.conjuncts, FieldPattern{FieldHSCode, "^" + code})
	}
	p.addSubstring(FieldItemDescription, q.ProductName)
	p.addSubstring(FieldBuyerName, q.BuyerName)
	p.addSubstring(FieldSupplierName, q.SupplierName)
	p.addSubstring(FieldOriginPort, q.PortCode)
	p.addSubstring(FieldUnit, q.Unit)
	p.addSubstring(FieldCountry, q.Country)

	return p
}

func (p *Predicate) addSubstring(f Field, value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		return
	}
	p.conjuncts = append(p.conjuncts, FieldPattern{f, EscapeRegexMeta(v)})
}

var regexMetaReplacer = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`+`, `\+`,
	`?`, `\?`,
	`^`, `\^`,
	`$`, `\$`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`[`, `\[`,
	`]`, `\]`,
)

// EscapeRegexMeta escapes regex metacharacters so the value matches
// itself literally inside a pattern.
func EscapeRegexMeta(s string) string {
	return regexMetaReplacer.Replace(s)
}
