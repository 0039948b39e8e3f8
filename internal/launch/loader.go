package launch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadDataset marks structural problems in the input file (missing
// required columns, unparseable cells, empty data section).
var ErrBadDataset = errors.New("bad dataset")

// Column headers matched case-insensitively in the CSV header row.
const (
	colFlightNumber = "flight number"
	colSite         = "launch site"
	colPayload      = "payload mass (kg)"
	colClass        = "class"
	colBoosterCat   = "booster version category"
)

// Load reads a launch-record CSV into an immutable Dataset.
// The first row is a header; columns are matched by name, extra columns are
// ignored. Launch Site, Payload Mass (kg) and class are required, Flight
// Number and Booster Version Category are optional. Any unparseable cell
// fails the whole load: the dashboard assumes a pre-cleaned dataset and
// refuses to start on anything else.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("launch: open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("launch: %s: %w", path, err)
	}
	return ds, nil
}

// Read parses launch-record CSV from r. See Load for the format contract.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrBadDataset, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colSite, colPayload, colClass} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadDataset, required)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadDataset, line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadDataset, line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrBadDataset)
	}
	return FromRecords(records), nil
}

func parseRow(row []string, cols map[string]int) (Record, error) {
	cell := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var rec Record

	site, _ := cell(colSite)
	if site == "" {
		return rec, errors.New("empty launch site")
	}
	rec.Site = site

	raw, _ := cell(colPayload)
	payload, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return rec, fmt.Errorf("payload mass %q: %v", raw, err)
	}
	rec.Payload = payload

	raw, _ = cell(colClass)
	class, err := strconv.Atoi(raw)
	if err != nil || (class != Success && class != Failure) {
		return rec, fmt.Errorf("outcome class %q: want 0 or 1", raw)
	}
	rec.Class = class

	if raw, ok := cell(colFlightNumber); ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("flight number %q: %v", raw, err)
		}
		rec.FlightNumber = n
	}

	if raw, ok := cell(colBoosterCat); ok {
		rec.BoosterCategory = raw
	}

	return rec, nil
}
