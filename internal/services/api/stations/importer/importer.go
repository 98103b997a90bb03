// Package importer reads the charging station register spreadsheet
//
// The register is the federal network agency export: a title block, then the
// header on row 11 and one charging point per row. Only rows whose postal code
// passes the postal policy are kept.
package importer

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/logger"
	"chargemap/internal/services/api/stations/domain"

	"github.com/xuri/excelize/v2"
)

// HeaderRow is the 1 based row holding column names
const HeaderRow = 11

// DefaultState keeps rows of this federal state when the column is present
const DefaultState = "Berlin"

// column names, aliases first match wins
var (
	colProvider   = []string{"Betreiber"}
	colStreet     = []string{"Straße", "Strasse"}
	colHouseNo    = []string{"Hausnummer"}
	colCity       = []string{"Ort"}
	colPostalCode = []string{"Postleitzahl", "PLZ"}
	colState      = []string{"Bundesland"}
	colName       = []string{"Anzeigename (Karte)"}
	colLatitude   = []string{"Breitengrad"}
	colLongitude  = []string{"Längengrad"}
	colPower      = []string{"Nennleistung Ladeeinrichtung [kW]", "KW"}
)

// Config controls which rows are kept
type Config struct {
	Policy domain.PostalPolicy
	// State filters on the Bundesland column; empty keeps every state
	State string
	// Sheet defaults to the first sheet
	Sheet string
}

// Report counts what a read did
type Report struct {
	Rows     int `json:"rows"`
	Kept     int `json:"kept"`
	Skipped  int `json:"skipped"`
	Imported int `json:"imported"`
}

// Read parses a register workbook into stations
func Read(r io.Reader, cfg Config) ([]domain.NewStation, Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Report{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open register")
	}
	defer func() { _ = f.Close() }()

	sheet := cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, Report{}, perr.Newf(perr.ErrorCodeInvalidArgument, "register has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, Report{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read sheet %s", sheet)
	}
	if len(rows) < HeaderRow {
		return nil, Report{}, perr.Newf(perr.ErrorCodeInvalidArgument, "register has no header on row %d", HeaderRow)
	}

	h := indexHeader(rows[HeaderRow-1])
	for _, need := range [][]string{colPostalCode, colLatitude, colLongitude} {
		if h.col(need) < 0 {
			return nil, Report{}, perr.Newf(perr.ErrorCodeInvalidArgument, "register is missing column %q", need[0])
		}
	}

	var (
		out []domain.NewStation
		rep Report
	)
	for _, row := range rows[HeaderRow:] {
		if blank(row) {
			continue
		}
		rep.Rows++
		st, ok := h.station(row, cfg)
		if !ok {
			rep.Skipped++
			continue
		}
		out = append(out, st)
	}
	rep.Kept = len(out)
	return out, rep, nil
}

// ReadFile is Read over a file on disk
func ReadFile(path string, cfg Config) ([]domain.NewStation, Report, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, Report{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open %s", path)
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, cfg)
}

// Run reads path and bulk imports the kept rows into dst
func Run(ctx context.Context, path string, cfg Config, dst domain.ImportPort) (Report, error) {
	stations, rep, err := ReadFile(path, cfg)
	if err != nil {
		return rep, err
	}
	if len(stations) == 0 {
		logger.C(ctx).Warn().Int("rows", rep.Rows).Msg("register produced no stations")
		return rep, nil
	}
	n, err := dst.Import(ctx, stations)
	rep.Imported = n
	if err != nil {
		return rep, perr.WithOp(err, "importer.Run")
	}
	logger.C(ctx).Info().
		Int("rows", rep.Rows).
		Int("skipped", rep.Skipped).
		Int("imported", n).
		Msg("register imported")
	return rep, nil
}

type header map[string]int

func indexHeader(row []string) header {
	h := header{}
	for i, name := range row {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

func (h header) col(names []string) int {
	for _, n := range names {
		if i, ok := h[n]; ok {
			return i
		}
	}
	return -1
}

func (h header) cell(row []string, names []string) string {
	i := h.col(names)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (h header) station(row []string, cfg Config) (domain.NewStation, bool) {
	if cfg.State != "" && h.col(colState) >= 0 {
		if st := h.cell(row, colState); st != "" && st != cfg.State {
			return domain.NewStation{}, false
		}
	}
	code, err := cfg.Policy.Parse(h.cell(row, colPostalCode))
	if err != nil {
		return domain.NewStation{}, false
	}
	lat, err := decimal(h.cell(row, colLatitude))
	if err != nil {
		return domain.NewStation{}, false
	}
	lon, err := decimal(h.cell(row, colLongitude))
	if err != nil {
		return domain.NewStation{}, false
	}
	power, _ := decimal(h.cell(row, colPower))

	provider := or(h.cell(row, colProvider), "Unknown Provider")
	street := or(h.cell(row, colStreet), "Unknown Street")
	houseNo := h.cell(row, colHouseNo)
	city := or(h.cell(row, colCity), "Unknown City")

	name := h.cell(row, colName)
	if name == "" {
		name = strings.TrimSpace(provider + " - " + street + " " + houseNo)
	}
	return domain.NewStation{
		PostalCode:  code.String(),
		Available:   true,
		Latitude:    lat,
		Longitude:   lon,
		Description: strings.Trim(provider+", "+strings.TrimSpace(street+" "+houseNo)+", "+city, ", "),
		Name:        name,
		PowerKW:     power,
	}, true
}

// decimal parses numbers written with either decimal separator
func decimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
