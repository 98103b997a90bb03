package management

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chargemap/internal/core/outcome"
	perr "chargemap/internal/platform/errors"
	pnet "chargemap/internal/platform/net"
	"chargemap/internal/platform/testkit"
	"chargemap/internal/services/api/ratings/domain"
	"chargemap/internal/services/api/ratings/repo"
	"chargemap/internal/services/api/ratings/service"
)

var (
	alice = pnet.Principal{UserID: "u-1", Username: "alice"}
	bob   = pnet.Principal{UserID: "u-2", Username: "bob"}
	anon  = pnet.Principal{}
)

func newMgmt(t *testing.T) *Management {
	t.Helper()
	return New(service.New(repo.NewMemory(), service.Config{}))
}

func create(t *testing.T, m *Management, who pnet.Principal) domain.RatingCreated {
	t.Helper()
	r := m.Create(context.Background(), who, "s1", 4, "good")
	if !r.IsOK() {
		t.Fatalf("create = %+v", r)
	}
	return r.Value
}

func TestCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMgmt(t)

	ev := create(t, m, alice)
	if ev.UserID != alice.UserID || ev.Username != "alice" {
		t.Fatalf("requester not recorded: %+v", ev)
	}

	if r := m.Create(ctx, anon, "s1", 4, ""); r.Kind != outcome.Unauthenticated {
		t.Fatalf("anonymous = %+v", r)
	}
	if r := m.Create(ctx, alice, "s1", 0, ""); r.Kind != outcome.Validation || r.Field != domain.FieldRatingValue {
		t.Fatalf("value 0 = %+v", r)
	}
	if r := m.Create(ctx, alice, "s1", 6, ""); r.Kind != outcome.Validation {
		t.Fatalf("value 6 = %+v", r)
	}
	if r := m.Create(ctx, alice, "s1", 3, strings.Repeat("z", 501)); r.Kind != outcome.Validation || r.Field != domain.FieldComment {
		t.Fatalf("501 chars = %+v", r)
	}
}

func TestGetAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMgmt(t)

	ev := create(t, m, alice)
	if r := m.Get(ctx, ev.ID); !r.IsOK() || r.Value.ID != ev.ID {
		t.Fatalf("get = %+v", r)
	}
	if r := m.Get(ctx, "missing"); r.Kind != outcome.NotFound {
		t.Fatalf("missing = %+v", r)
	}
	if r := m.List(ctx, "s1"); !r.IsOK() || len(r.Value) != 1 {
		t.Fatalf("list = %+v", r)
	}
}

func TestOwnershipRejectionLeavesRecordUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMgmt(t)

	ev := create(t, m, alice)
	v := 1
	if r := m.Update(ctx, bob, ev.ID, domain.Patch{Value: &v}); r.Kind != outcome.PermissionDenied {
		t.Fatalf("update by bob = %+v", r)
	}
	if r := m.Delete(ctx, bob, ev.ID); r.Kind != outcome.PermissionDenied {
		t.Fatalf("delete by bob = %+v", r)
	}
	if r := m.Update(ctx, anon, ev.ID, domain.Patch{Value: &v}); r.Kind != outcome.Unauthenticated {
		t.Fatalf("anonymous update = %+v", r)
	}

	got := m.Get(ctx, ev.ID)
	if !got.IsOK() || got.Value.Value != 4 || got.Value.Comment != "good" || !got.Value.UpdatedAt.IsZero() {
		t.Fatalf("record changed: %+v", got.Value)
	}
}

func TestOwnerUpdatesAndDeletes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMgmt(t)

	ev := create(t, m, alice)
	c := "even better"
	r := m.Update(ctx, alice, ev.ID, domain.Patch{Comment: &c})
	if !r.IsOK() || r.Value.Comment != c || r.Value.Value != 4 {
		t.Fatalf("update = %+v", r)
	}

	if d := m.Delete(ctx, alice, ev.ID); !d.IsOK() || !d.Value {
		t.Fatalf("delete = %+v", d)
	}
	if g := m.Get(ctx, ev.ID); g.Kind != outcome.NotFound {
		t.Fatalf("get after delete = %+v", g)
	}
	if d := m.Delete(ctx, alice, ev.ID); d.Kind != outcome.NotFound {
		t.Fatalf("second delete = %+v", d)
	}
}

type stubSvc struct {
	domain.ServicePort
	rec     domain.Record
	getErr  error
	deleted bool
	err     error
}

func (s stubSvc) GetRatingByID(context.Context, string) (domain.Record, error) { return s.rec, s.getErr }
func (s stubSvc) DeleteRating(context.Context, string) (bool, error)           { return s.deleted, s.err }

func TestDeleteNoopIsNotFound(t *testing.T) {
	t.Parallel()

	m := New(stubSvc{rec: domain.Record{ID: "r1", UserID: alice.UserID}})
	if r := m.Delete(context.Background(), alice, "r1"); r.Kind != outcome.NotFound {
		t.Fatalf("noop delete = %+v", r)
	}
}

func TestSystemFaultsAreScrubbed(t *testing.T) {
	t.Parallel()

	fault := perr.Wrap(errors.New("dial tcp 10.0.0.7:5432: refused"), perr.ErrorCodeDB, "get rating")
	m := New(stubSvc{getErr: fault})
	if r := m.Delete(context.Background(), alice, "r1"); r.Kind != outcome.SystemFault || r.Message != outcome.SystemFaultMessage {
		t.Fatalf("delete fault = %+v", r)
	}
	g := m.Get(context.Background(), "r1")
	if g.Kind != outcome.SystemFault || strings.Contains(g.Message, "10.0.0.7") || !errors.Is(g.Cause(), fault) {
		t.Fatalf("get fault = %+v", g)
	}
}

func TestNewPanicsOnNil(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil) })
}
