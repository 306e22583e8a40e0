package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Delimiter separates the fields of a stored line.
const Delimiter = ";"

const (
	fieldCount    = 5
	minAmountDigs = 2
)

// Errors returned by New and Parse. Callers match them with errors.Is.
var (
	ErrTooFewFields   = errors.New("line has fewer than 5 fields")
	ErrInvalidKind    = errors.New("kind must be IN or OUT")
	ErrInvalidAmount  = errors.New("amount is not a number")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrDelimiter      = fmt.Errorf("date, kind and category must not contain %q", Delimiter)
	ErrLineBreak      = errors.New("fields must not contain line breaks")
)

// Kind is the direction of a record: money in or money out.
type Kind string

const (
	Income  Kind = "IN"
	Expense Kind = "OUT"
)

// ParseKind accepts IN or OUT in any case, ignoring surrounding spaces.
func ParseKind(value string) (Kind, error) {
	switch kind := Kind(strings.ToUpper(strings.TrimSpace(value))); kind {
	case Income, Expense:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidKind, strings.TrimSpace(value))
	}
}

func (k Kind) Label() string {
	if k == Income {
		return "income"
	}
	return "expense"
}

// Record is a single ledger entry. Amount is always a positive magnitude;
// Kind gives the direction.
type Record struct {
	Date     string
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Note     string
}

// New validates user input and builds a Record. Nothing is returned unless
// every field is acceptable.
func New(date, kind, category, amount, note string) (Record, error) {
	for _, field := range []string{date, kind, category, amount, note} {
		if strings.ContainsAny(field, "\r\n") {
			return Record{}, ErrLineBreak
		}
	}

	date = strings.TrimSpace(date)
	category = strings.TrimSpace(category)

	if strings.Contains(date, Delimiter) || strings.Contains(kind, Delimiter) || strings.Contains(category, Delimiter) {
		return Record{}, ErrDelimiter
	}

	k, err := ParseKind(kind)
	if err != nil {
		return Record{}, err
	}

	a, err := ParseAmount(amount)
	if err != nil {
		return Record{}, err
	}

	if a.IsNegative() {
		return Record{}, fmt.Errorf("%w: got %s", ErrNegativeAmount, a.String())
	}

	return Record{
		Date:     date,
		Kind:     k,
		Category: category,
		Amount:   a,
		Note:     note,
	}, nil
}

// ParseAmount reads a decimal amount. The whole trimmed value must be a
// number; the sign is not checked.
func ParseAmount(value string) (decimal.Decimal, error) {
	a, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: got %q", ErrInvalidAmount, strings.TrimSpace(value))
	}
	return a, nil
}

// FormatAmount renders a fixed-point amount with at least two decimals and
// as many more as the value carries.
func FormatAmount(amount decimal.Decimal) string {
	places := int32(minAmountDigs)
	if exp := -amount.Exponent(); exp > places {
		places = exp
	}
	return amount.StringFixed(places)
}

// Line serializes the record as date;kind;category;amount;note without a
// trailing newline.
func (r Record) Line() string {
	return strings.Join([]string{
		r.Date,
		string(r.Kind),
		r.Category,
		FormatAmount(r.Amount),
		r.Note,
	}, Delimiter)
}

// Parse decodes a stored line. The note is the unbounded last field, so any
// delimiter after the fourth one belongs to it.
func Parse(line string) (Record, error) {
	parts := strings.SplitN(line, Delimiter, fieldCount)
	if len(parts) < fieldCount {
		return Record{}, fmt.Errorf("%w: got %d", ErrTooFewFields, len(parts))
	}

	amount, err := ParseAmount(parts[3])
	if err != nil {
		return Record{}, err
	}

	kind, err := ParseKind(parts[1])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Date:     strings.TrimSpace(parts[0]),
		Kind:     kind,
		Category: strings.TrimSpace(parts[2]),
		Amount:   amount,
		Note:     parts[4],
	}, nil
}

// Describe is the short form used when reporting a single record.
func (r Record) Describe() string {
	return fmt.Sprintf("%s %s (%s)", r.Date, r.Category, r.Note)
}
