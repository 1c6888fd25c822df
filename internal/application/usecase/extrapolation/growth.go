package extrapolation

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

var sizePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// SizePoint is one parseable size measurement.
type SizePoint struct {
	Date time.Time
	Size float64
}

// SizeSeries is the chronologically ordered size history of one person.
type SizeSeries struct {
	Name   string
	Points []SizePoint
}

// ParseSize extracts the leading numeric size from free text such as "7.5" or "8T".
func ParseSize(raw string) (float64, bool) {
	m := sizePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatSize renders a size without trailing zeros ("8", "7.5").
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}

// NextHalfSize returns the next half-integer strictly above size.
func NextHalfSize(size float64) float64 {
	return math.Floor(size*2)/2 + 0.5
}

// SeriesByPerson groups growth records by person name, dropping unparseable sizes.
// Names compare case-insensitively; the first spelling seen is kept.
func SeriesByPerson(records []*entity.GrowthRecord) []SizeSeries {
	index := make(map[string]int)
	var series []SizeSeries
	for _, r := range records {
		if r == nil {
			continue
		}
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		i, ok := index[key]
		if !ok {
			i = len(series)
			index[key] = i
			series = append(series, SizeSeries{Name: name})
		}
		size, ok := ParseSize(r.Size)
		if !ok || r.RecordDate.IsZero() {
			continue
		}
		series[i].Points = append(series[i].Points, SizePoint{Date: r.RecordDate, Size: size})
	}

	for i := range series {
		sort.SliceStable(series[i].Points, func(a, b int) bool {
			return series[i].Points[a].Date.Before(series[i].Points[b].Date)
		})
	}
	sort.SliceStable(series, func(a, b int) bool {
		return strings.ToLower(series[a].Name) < strings.ToLower(series[b].Name)
	})
	return series
}

// PredictSeries projects the next half size for one person.
// It returns false with fewer than two usable points or a non-positive size delta.
func PredictSeries(s SizeSeries) (GrowthPrediction, bool) {
	if len(s.Points) < 2 {
		return GrowthPrediction{}, false
	}
	first := s.Points[0]
	last := s.Points[len(s.Points)-1]

	delta := last.Size - first.Size
	if delta <= 0 {
		return GrowthPrediction{}, false
	}

	months := math.Max(0, valueobject.MonthsBetween(first.Date, last.Date))
	perStep := months / delta
	next := NextHalfSize(last.Size)

	return GrowthPrediction{
		Name:                 s.Name,
		RecordCount:          len(s.Points),
		FirstRecordDate:      first.Date,
		LastRecordDate:       last.Date,
		FirstSize:            first.Size,
		LastSize:             last.Size,
		MonthsBetweenRecords: months,
		SizeDelta:            delta,
		MonthsPerSizeStep:    perStep,
		NextSize:             next,
		NextSizeLabel:        FormatSize(next),
		MonthsUntilNextSize:  int(math.Round(0.5 * perStep)),
	}, true
}

// PredictGrowth runs PredictSeries for every person with growth records.
func PredictGrowth(records []*entity.GrowthRecord) []GrowthPrediction {
	predictions := []GrowthPrediction{}
	for _, s := range SeriesByPerson(records) {
		if p, ok := PredictSeries(s); ok {
			predictions = append(predictions, p)
		}
	}
	return predictions
}
