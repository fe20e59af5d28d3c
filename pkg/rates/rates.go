package rates

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table holds per-category daily USD rates plus per-destination multipliers.
// It backs the offline planner when no reasoning endpoint is configured.
type Table struct {
	perDay     map[string]float64 // category -> USD per traveler-day
	destFactor map[string]float64 // lowercase destination -> multiplier
}

func Default() *Table {
	return &Table{
		perDay: map[string]float64{
			"lodging":    110,
			"meals":      55,
			"transport":  70,
			"experience": 45,
		},
		destFactor: map[string]float64{},
	}
}

// LoadFromFiles starts from the defaults and applies overrides: a CSV of
// category,usd_per_day rows and an optional XLSX whose first sheet lists
// destination,factor rows. Either path may be empty.
func LoadFromFiles(ratesCSV, factorsXLSX string) (*Table, error) {
	t := Default()
	if ratesCSV != "" {
		if err := t.loadRatesCSV(ratesCSV); err != nil {
			return nil, err
		}
	}
	if factorsXLSX != "" {
		_ = t.loadFactorsXLSX(factorsXLSX)
	}
	if len(t.perDay) == 0 {
		return nil, errors.New("no rates loaded")
	}
	return t, nil
}

func (t *Table) loadRatesCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		cat := strings.ToLower(strings.TrimSpace(row[0]))
		if i == 0 && cat == "category" { // header
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || v <= 0 {
			continue
		}
		t.perDay[cat] = v
	}
	return nil
}

func (t *Table) loadFactorsXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		dest := strings.ToLower(strings.TrimSpace(row[0]))
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || dest == "" || dest == "destination" || v <= 0 {
			continue
		}
		t.destFactor[dest] = v
	}
	return nil
}

// PerDay returns the daily rate for one traveler, scaled by the destination
// multiplier when one is configured.
func (t *Table) PerDay(category, destination string) float64 {
	v := t.perDay[strings.ToLower(category)]
	if f, ok := t.destFactor[strings.ToLower(strings.TrimSpace(destination))]; ok {
		v *= f
	}
	return v
}
