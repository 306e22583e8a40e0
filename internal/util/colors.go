package util

import (
	"github.com/fatih/color"

	"github.com/GustavoCaso/budget/internal/record"
)

var kindColors = map[record.Kind]*color.Color{
	record.Income:  color.New(color.FgGreen, color.Bold),
	record.Expense: color.New(color.FgHiRed),
}

// KindColor paints text green for income and red for expenses. Unknown kinds
// are returned unchanged.
func KindColor(kind record.Kind, text string) string {
	c, ok := kindColors[kind]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
