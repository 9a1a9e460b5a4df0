// Package report renders valuation results for humans (text) and machines (JSON).
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/rewired-gh/tokval/internal/models"
)

// Format specifies the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a configuration value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r *models.Report, f Format) error {
	if r == nil {
		return fmt.Errorf("nil report")
	}
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(r))
		return err
	case FormatJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

func currency(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func count(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
