package util

import "time"

// DateLayout is the date format suggested to the user. Ledger dates are
// free-form text, so nothing enforces it.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
