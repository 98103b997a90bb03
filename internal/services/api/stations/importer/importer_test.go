package importer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/services/api/stations/domain"

	"github.com/xuri/excelize/v2"
)

var registerHeader = []any{
	"Betreiber", "Straße", "Hausnummer", "Ort", "Postleitzahl", "Bundesland",
	"Anzeigename (Karte)", "Breitengrad", "Längengrad", "Nennleistung Ladeeinrichtung [kW]",
}

func register(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "Ladesaeulenregister")
	if err := f.SetSheetRow(sheet, "A11", &registerHeader); err != nil {
		t.Fatalf("header: %v", err)
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, HeaderRow+1+i)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf
}

func defaultCfg() Config { return Config{Policy: domain.DefaultPolicy(), State: DefaultState} }

func TestReadKeepsPolicyRows(t *testing.T) {
	t.Parallel()

	buf := register(t,
		[]any{"Stromnetz Berlin", "Invalidenstr.", "1", "Berlin", "10115", "Berlin", "", "52,5309", "13,3847", "22"},
		[]any{"Allego", "Karl-Marx-Str.", "66", "Berlin", "12043", "Berlin", "Rathaus Neukoelln", 52.4812, 13.4352, "150,5"},
		[]any{"EnBW", "Hauptstr.", "3", "Potsdam", "14467", "Brandenburg", "", "52.39", "13.06", "11"},
		[]any{"EnBW", "Kantstr.", "9", "Berlin", "99999", "Berlin", "", "52.5", "13.3", "11"},
		[]any{"EnBW", "Kantstr.", "9", "Berlin", "10623", "Berlin", "", "north", "13.3", "11"},
	)
	got, rep, err := Read(buf, defaultCfg())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rep.Rows != 5 || rep.Kept != 2 || rep.Skipped != 3 {
		t.Fatalf("report = %+v", rep)
	}

	first := got[0]
	if first.PostalCode != "10115" || !first.Available {
		t.Fatalf("first = %+v", first)
	}
	if first.Latitude != 52.5309 || first.Longitude != 13.3847 || first.PowerKW != 22 {
		t.Fatalf("comma decimals not parsed: %+v", first)
	}
	if first.Name != "Stromnetz Berlin - Invalidenstr. 1" {
		t.Fatalf("derived name = %q", first.Name)
	}
	if first.Description != "Stromnetz Berlin, Invalidenstr. 1, Berlin" {
		t.Fatalf("description = %q", first.Description)
	}

	if got[1].Name != "Rathaus Neukoelln" || got[1].PowerKW != 150.5 {
		t.Fatalf("second = %+v", got[1])
	}
}

func TestReadFillsMissingAddressParts(t *testing.T) {
	t.Parallel()

	buf := register(t, []any{"", "", "", "", "13353", "", "", "52.54", "13.35", ""})
	got, _, err := Read(buf, defaultCfg())
	if err != nil || len(got) != 1 {
		t.Fatalf("Read = %v, %v", got, err)
	}
	if got[0].Name != "Unknown Provider - Unknown Street" {
		t.Fatalf("name = %q", got[0].Name)
	}
	if got[0].PowerKW != 0 {
		t.Fatalf("missing power should be zero, got %v", got[0].PowerKW)
	}
}

func TestReadStateFilterOptional(t *testing.T) {
	t.Parallel()

	row := []any{"EnBW", "Hauptstr.", "3", "Berlin", "10115", "Brandenburg", "", "52.5", "13.4", "11"}
	if got, _, _ := Read(register(t, row), defaultCfg()); len(got) != 0 {
		t.Fatalf("state filter should skip the row")
	}
	if got, _, _ := Read(register(t, row), Config{Policy: domain.DefaultPolicy()}); len(got) != 1 {
		t.Fatalf("empty state should keep the row")
	}
}

func TestReadRejectsBrokenRegisters(t *testing.T) {
	t.Parallel()

	if _, _, err := Read(bytes.NewReader([]byte("not a workbook")), defaultCfg()); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("garbage: want invalid argument, got %v", err)
	}

	f := excelize.NewFile()
	_ = f.SetCellValue(f.GetSheetName(0), "A1", "short")
	buf, _ := f.WriteToBuffer()
	_ = f.Close()
	if _, _, err := Read(buf, defaultCfg()); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("no header: want invalid argument, got %v", err)
	}

	f = excelize.NewFile()
	hdr := []any{"Betreiber", "Postleitzahl"}
	_ = f.SetSheetRow(f.GetSheetName(0), "A11", &hdr)
	buf, _ = f.WriteToBuffer()
	_ = f.Close()
	if _, _, err := Read(buf, defaultCfg()); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing columns: want invalid argument, got %v", err)
	}
}

type sink struct {
	got []domain.NewStation
	err error
}

func (s *sink) Import(_ context.Context, in []domain.NewStation) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.got = append(s.got, in...)
	return len(in), nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "register.xlsx")
	buf := register(t, []any{"Allego", "Karl-Marx-Str.", "66", "Berlin", "12043", "Berlin", "", "52.48", "13.43", "50"})
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	dst := &sink{}
	rep, err := Run(context.Background(), path, defaultCfg(), dst)
	if err != nil || rep.Imported != 1 || len(dst.got) != 1 {
		t.Fatalf("Run = %+v, %v", rep, err)
	}

	boom := errors.New("boom")
	if _, err := Run(context.Background(), path, defaultCfg(), &sink{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("import error lost: %v", err)
	}

	if _, err := Run(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"), defaultCfg(), dst); err == nil {
		t.Fatalf("missing file should fail")
	}
}
