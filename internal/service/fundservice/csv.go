package fundservice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sevaindia/fundlink/internal/domain"
)

const csvHeader = "User ID,Full Name,Email,Target Amount,Collected Amount,Progress %,Created At,Updated At"

// ExportCSV serializes the fundraiser list for the admin download. Name and
// email are always quoted (they may contain commas); missing profile fields
// render as N/A; progress keeps two decimals.
func ExportCSV(fundraisers []domain.Fundraiser) string {
	rows := make([]string, 0, len(fundraisers)+1)
	rows = append(rows, csvHeader)

	for _, f := range fundraisers {
		rows = append(rows, strings.Join([]string{
			f.UserID,
			quoted(f.FullName),
			quoted(f.Email),
			formatAmount(f.TargetAmount),
			formatAmount(f.CollectedAmount),
			fmt.Sprintf("%.2f", ProgressPercentage(f.CollectedAmount, f.TargetAmount)),
			f.CreatedAt.Format(time.RFC3339),
			f.UpdatedAt.Format(time.RFC3339),
		}, ","))
	}

	return strings.Join(rows, "\n")
}

func quoted(s *string) string {
	if s == nil || *s == "" {
		return `"N/A"`
	}
	return `"` + *s + `"`
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
