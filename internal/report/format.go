package report

import "fmt"

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(percentage float64) string {
	return fmt.Sprintf("%.1f%%", percentage)
}
