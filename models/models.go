package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
)

// --- JWT ---

// JwtClaims are the bearer token claims accepted by the development backend.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// --- Boundary scalars ---

var jsonNull = []byte("null")

// ID is an entity identifier. The backends send some ids as strings and some
// as numbers; both decode to the same textual form.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Price is a decimal amount that tolerates strings, numbers, null and garbage.
// Anything unparseable decodes to an invalid price instead of failing the
// surrounding payload.
type Price struct {
	Amount decimal.Decimal
	Valid  bool
}

// NewPrice returns a valid price.
func NewPrice(amount decimal.Decimal) Price {
	return Price{Amount: amount, Valid: true}
}

// ParsePrice parses s defensively.
func ParsePrice(s string) Price {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}
	}
	return NewPrice(d)
}

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) || len(b) == 0 {
		*p = Price{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*p = Price{}
			return nil
		}
		*p = ParsePrice(s)
		return nil
	}
	*p = ParsePrice(string(b))
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return jsonNull, nil
	}
	return json.Marshal(p.Amount.StringFixed(2))
}

// String renders the price for display.
func (p Price) String() string {
	if !p.Valid {
		return "N/A"
	}
	return "₹" + p.Amount.StringFixed(2)
}

// ListState tells how an EncodedList arrived on the wire.
type ListState int

const (
	ListAbsent ListState = iota
	ListParsed
	ListRaw
)

// EncodedList is a list the backends ship either as a JSON array or as a
// JSON-encoded string holding an array. Malformed text is kept in Raw and
// yields no items.
type EncodedList struct {
	State ListState
	Items []string
	Raw   string
}

// NewEncodedList returns a parsed list.
func NewEncodedList(items ...string) EncodedList {
	return EncodedList{State: ListParsed, Items: items}
}

// Values returns the parsed items; never nil.
func (l EncodedList) Values() []string {
	if l.State != ListParsed || l.Items == nil {
		return []string{}
	}
	return l.Items
}

// First returns the first item or "".
func (l EncodedList) First() string {
	if v := l.Values(); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (l *EncodedList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*l = EncodedList{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*l = EncodedList{State: ListRaw, Raw: string(b)}
			return nil
		}
		if strings.TrimSpace(s) == "" {
			*l = EncodedList{}
			return nil
		}
		items, ok := decodeItems([]byte(s))
		if !ok {
			*l = EncodedList{State: ListRaw, Raw: s}
			return nil
		}
		*l = EncodedList{State: ListParsed, Items: items}
		return nil
	}
	items, ok := decodeItems(b)
	if !ok {
		*l = EncodedList{State: ListRaw, Raw: string(b)}
		return nil
	}
	*l = EncodedList{State: ListParsed, Items: items}
	return nil
}

// MarshalJSON writes the wire form the backends use: a JSON string holding
// the encoded array.
func (l EncodedList) MarshalJSON() ([]byte, error) {
	switch l.State {
	case ListParsed:
		inner, err := json.Marshal(l.Values())
		if err != nil {
			return nil, err
		}
		return json.Marshal(string(inner))
	case ListRaw:
		return json.Marshal(l.Raw)
	default:
		return jsonNull, nil
	}
}

func decodeItems(b []byte) ([]string, bool) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, false
	}
	items := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			items = append(items, s)
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, r); err != nil {
			continue
		}
		items = append(items, buf.String())
	}
	return items, true
}

// Timestamp decodes the handful of time layouts the backends emit. Unknown
// text is preserved in Raw with a zero Time.
type Timestamp struct {
	Time time.Time
	Raw  string
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s using the known layouts.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Timestamp{Time: time.UnixMilli(ms).UTC()}
	}
	return Timestamp{Raw: s}
}

// IsZero reports whether nothing was received.
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero() && t.Raw == ""
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*t = Timestamp{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*t = Timestamp{Raw: string(b)}
			return nil
		}
		*t = ParseTimestamp(s)
		return nil
	}
	*t = ParseTimestamp(string(b))
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		if t.Raw == "" {
			return jsonNull, nil
		}
		return json.Marshal(t.Raw)
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Format renders the timestamp with layout, or the raw text when it could not
// be parsed.
func (t Timestamp) Format(layout string) string {
	if t.Time.IsZero() {
		return t.Raw
	}
	return t.Time.Local().Format(layout)
}

// String renders date and time.
func (t Timestamp) String() string {
	return t.Format("2006-01-02 15:04")
}
