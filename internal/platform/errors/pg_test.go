package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeConflict},
		{"40P01", ErrorCodeConflict},
		{"25006", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: c.code}))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}
	if got := CodeOf(FromPostgres(&pgconn.PgError{Code: "23505"}, "insert rating")); got != ErrorCodeDuplicateKey {
		t.Fatalf("unique violation mapped to %v", got)
	}
	if got := CodeOf(FromPostgres(stderrs.New("conn reset"), "query")); got != ErrorCodeDB {
		t.Fatalf("foreign error mapped to %v", got)
	}
	if got := CodeOf(FromPostgres(context.DeadlineExceeded, "query")); got != ErrorCodeUnavailable {
		t.Fatalf("deadline mapped to %v", got)
	}
}

func TestPgPredicates(t *testing.T) {
	if !IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)) {
		t.Fatalf("IsNoRows should see through wrapping")
	}
	if !IsDuplicateKey(&pgconn.PgError{Code: "23505"}) || IsDuplicateKey(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("IsDuplicateKey mismatch")
	}
}
