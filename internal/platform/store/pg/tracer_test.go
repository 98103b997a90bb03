package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", "select 1"},
		{"SELECT\t*\nFROM\r\tstations WHERE  id =  $1", "SELECT * FROM stations WHERE id = $1"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type logLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Args      []any   `json:"args"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component"`
}

func TestTracerLevels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		err   error
		slow  bool
		level string
	}{
		{"ok", nil, false, "info"},
		{"slow", nil, true, "warn"},
		{"failed", errors.New("boom"), true, "error"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

		ev := QueryEvent{
			SQL:       "SELECT  * \n FROM  ratings\tWHERE station_id = $1",
			Args:      []any{"st-1"},
			ElapsedUS: 12345,
			Err:       tc.err,
			Slow:      tc.slow,
		}
		tr.OnQuery(context.Background(), ev)

		var line logLine
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
			t.Fatalf("%s: unmarshal: %v raw=%s", tc.name, err, buf.String())
		}
		if line.Level != tc.level {
			t.Fatalf("%s: level = %q, want %q", tc.name, line.Level, tc.level)
		}
		if math.Abs(line.ElapsedMS-12.345) > 0.0005 {
			t.Fatalf("%s: elapsed_ms = %v", tc.name, line.ElapsedMS)
		}
		if line.SQL != "SELECT * FROM ratings WHERE station_id = $1" || line.Component != "pg" || line.Message != "pg query" {
			t.Fatalf("%s: unexpected line %+v", tc.name, line)
		}
		if len(line.Args) != 1 || line.Args[0] != "st-1" {
			t.Fatalf("%s: args = %#v", tc.name, line.Args)
		}
		if tc.err != nil && line.Error != "boom" {
			t.Fatalf("%s: error field = %q", tc.name, line.Error)
		}
	}
}
