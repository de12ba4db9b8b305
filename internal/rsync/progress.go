package rsync

import (
	"math"
	"strconv"
	"strings"
)

// Progress is the transfer state extracted from one line of rsync output.
type Progress struct {
	Percent float64
	Info    string
}

// ParseProgress looks for the first token such as "45%" and returns the
// percentage (capped at 100) together with up to two following tokens,
// typically rate and elapsed time. Lines without a marker report false.
func ParseProgress(line string) (Progress, bool) {
	fields := strings.Fields(line)
	for i, field := range fields {
		raw, ok := strings.CutSuffix(field, "%")
		if !ok {
			continue
		}
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
			continue
		}
		if pct > 100 {
			pct = 100
		}
		end := i + 3
		if end > len(fields) {
			end = len(fields)
		}
		return Progress{Percent: pct, Info: strings.Join(fields[i+1:end], " ")}, true
	}
	return Progress{}, false
}
