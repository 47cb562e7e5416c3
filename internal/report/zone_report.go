package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/mlb-pbp/internal/models"
)

// Location cells reported per zone side. The out-of-zone table drops the
// middle-middle cell: a pitch there is in the zone by definition of the
// banding.
var (
	inZoneLocationColumns  = []string{"ID", "IM", "IU", "MD", "MM", "MU", "OD", "OM", "OU"}
	outZoneLocationColumns = []string{"ID", "IM", "IU", "MD", "MU", "OD", "OM", "OU"}
)

// Options narrows a report run.
type Options struct {
	// VsBatterHand keeps only pitches thrown to this effective batter
	// side ("L" or "R").
	VsBatterHand *string
}

// Row is one pitch type's aggregate line.
type Row struct {
	PitchTypeCode string
	Count         int
	AvgSpeed      decimal.Decimal
	ZoneCount     int
	ZoneRate      decimal.Decimal
	UsageRate     decimal.Decimal
	ChaseRate     *decimal.Decimal
	LocationRates map[string]decimal.Decimal
}

// Report is a rendered-ready scouting table.
type Report struct {
	Title           string
	ZoneCountLabel  string
	ZoneRateLabel   string
	LocationColumns []string
	Rows            []Row
}

// InZone builds the in-zone scouting report: per pitch type, how often the
// pitcher lives in the strike zone and where inside it.
func InZone(rows []models.PitchScoutingRow, opts Options) *Report {
	rows = prepare(rows, opts)
	report := &Report{
		Title:           title("IN-ZONE PITCH DATA", opts),
		ZoneCountLabel:  "in_sz_count",
		ZoneRateLabel:   "in_sz_rate",
		LocationColumns: inZoneLocationColumns,
	}
	report.Rows = aggregate(rows, false)
	return report
}

// OutZone builds the out-of-zone scouting report, adding the chase rate:
// the share of outside pitches far enough off the plate to bait a chase.
func OutZone(rows []models.PitchScoutingRow, opts Options) *Report {
	rows = prepare(rows, opts)
	report := &Report{
		Title:           title("OUT-OF-ZONE PITCH DATA", opts),
		ZoneCountLabel:  "out_sz_count",
		ZoneRateLabel:   "out_sz_rate",
		LocationColumns: outZoneLocationColumns,
	}
	report.Rows = aggregate(rows, true)
	return report
}

func title(base string, opts Options) string {
	if opts.VsBatterHand != nil {
		return fmt.Sprintf("%s VS %s", base, *opts.VsBatterHand)
	}
	return base
}

// prepare drops unreportable pitches, resolves switch hitters to their
// effective side and applies the hand filter.
func prepare(rows []models.PitchScoutingRow, opts Options) []models.PitchScoutingRow {
	var kept []models.PitchScoutingRow
	for _, row := range rows {
		if row.StartSpeed == nil {
			continue
		}
		if row.BatterHand != nil && row.PitcherHand != nil {
			hand := EffectiveBatterHand(*row.BatterHand, *row.PitcherHand)
			row.BatterHand = &hand
		}
		if opts.VsBatterHand != nil {
			if row.BatterHand == nil || *row.BatterHand != *opts.VsBatterHand {
				continue
			}
		}
		kept = append(kept, row)
	}
	return kept
}

// aggregate groups the prepared pitches by pitch type. The usage rate is
// against all prepared pitches; zone, chase and location rates are against
// the zone-side subset.
func aggregate(rows []models.PitchScoutingRow, outside bool) []Row {
	total := len(rows)

	type bucket struct {
		count      int
		speedSum   float64
		zoneCount  int
		chaseCount int
		locations  map[string]int
	}
	buckets := make(map[string]*bucket)

	for i := range rows {
		row := &rows[i]
		if row.PitchTypeCode == nil {
			continue
		}
		b, ok := buckets[*row.PitchTypeCode]
		if !ok {
			b = &bucket{locations: make(map[string]int)}
			buckets[*row.PitchTypeCode] = b
		}
		b.count++
		b.speedSum += *row.StartSpeed

		if row.Zone == nil {
			continue
		}
		if outside && !OutsideStrikeZone(*row.Zone) {
			continue
		}
		if !outside && !InStrikeZone(*row.Zone) {
			continue
		}
		if row.BatterHand == nil || row.BatterSZTop == nil || row.BatterSZBottom == nil {
			continue
		}
		px, pz, ok := Coordinates(&row.Pitch)
		if !ok {
			continue
		}

		b.zoneCount++
		loc := Location(*row.Zone, px, pz, *row.BatterSZTop, *row.BatterSZBottom, *row.BatterHand)
		b.locations[loc]++
		if outside && IsChase(*row.Zone, px, pz, *row.BatterSZTop, *row.BatterSZBottom) {
			b.chaseCount++
		}
	}

	codes := make([]string, 0, len(buckets))
	for code := range buckets {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]Row, 0, len(codes))
	for _, code := range codes {
		b := buckets[code]
		row := Row{
			PitchTypeCode: code,
			Count:         b.count,
			AvgSpeed:      decimal.NewFromFloat(b.speedSum / float64(b.count)).Round(1),
			ZoneCount:     b.zoneCount,
			ZoneRate:      pct(b.zoneCount, b.count),
			UsageRate:     pct(b.count, total),
			LocationRates: make(map[string]decimal.Decimal),
		}
		for loc, n := range b.locations {
			row.LocationRates[loc] = pct(n, b.zoneCount)
		}
		if outside {
			chase := pct(b.chaseCount, b.zoneCount)
			row.ChaseRate = &chase
		}
		out = append(out, row)
	}
	return out
}

// pct returns n/d as a percentage rounded to one decimal, zero when the
// denominator is zero.
func pct(n, d int) decimal.Decimal {
	if d == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(d))).
		Round(1)
}

// Render writes the report as a github-style table.
func (r *Report) Render() string {
	headers := []string{"pitch_type_code", "count", "avg_speed", r.ZoneCountLabel, r.ZoneRateLabel, "usage_rate"}
	hasChase := len(r.Rows) > 0 && r.Rows[0].ChaseRate != nil
	if hasChase {
		headers = append(headers, "chasing_rate")
	}
	headers = append(headers, r.LocationColumns...)

	table := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := []string{
			row.PitchTypeCode,
			fmt.Sprintf("%d", row.Count),
			row.AvgSpeed.StringFixed(1),
			fmt.Sprintf("%d", row.ZoneCount),
			row.ZoneRate.StringFixed(1),
			row.UsageRate.StringFixed(1),
		}
		if hasChase {
			cells = append(cells, row.ChaseRate.StringFixed(1))
		}
		for _, col := range r.LocationColumns {
			cells = append(cells, row.LocationRates[col].StringFixed(1))
		}
		table = append(table, cells)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, cells := range table {
		for i, c := range cells {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteString("\n\n")

	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i, c := range cells {
			sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], c))
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	for _, cells := range table {
		writeRow(cells)
	}
	return sb.String()
}
