package session_test

import (
	"testing"

	"github.com/alternativafozthiago/financas/internal/session"
)

type record struct {
	id   string
	name string
}

func newCollection(mgr *session.Manager) *session.Collection[record] {
	return session.NewCollection(mgr, func(r record) string { return r.id })
}

func TestCollectionMergeRules(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager()
	coll := newCollection(mgr)
	owner := "owner-1"
	mgr.Resolve(owner)

	gen := mgr.Generation(owner)
	if !coll.Prime(owner, gen, []record{{id: "b", name: "segundo"}, {id: "a", name: "primeiro"}}) {
		t.Fatalf("expected prime to install snapshot")
	}

	coll.Prepend(owner, record{id: "c", name: "terceiro"})
	items, ok := coll.Snapshot(owner)
	if !ok {
		t.Fatalf("expected snapshot after prepend")
	}
	if len(items) != 3 || items[0].id != "c" {
		t.Fatalf("expected new record first, got %+v", items)
	}

	coll.Replace(owner, record{id: "a", name: "atualizado"})
	items, _ = coll.Snapshot(owner)
	if items[2].id != "a" || items[2].name != "atualizado" {
		t.Fatalf("expected record a replaced in place, got %+v", items)
	}

	coll.Remove(owner, "b")
	items, _ = coll.Snapshot(owner)
	if len(items) != 2 {
		t.Fatalf("expected 2 records after remove, got %+v", items)
	}
	for _, r := range items {
		if r.id == "b" {
			t.Fatalf("expected record b removed")
		}
	}
}

func TestCollectionSnapshotsAreImmutable(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager()
	coll := newCollection(mgr)
	owner := "owner-1"
	mgr.Resolve(owner)

	coll.Prime(owner, mgr.Generation(owner), []record{{id: "a", name: "primeiro"}})
	before, _ := coll.Snapshot(owner)

	coll.Prepend(owner, record{id: "b", name: "segundo"})

	if len(before) != 1 || before[0].id != "a" {
		t.Fatalf("snapshot handed out earlier changed: %+v", before)
	}
}

func TestCollectionSignOutDiscards(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager()
	coll := newCollection(mgr)
	owner := "owner-1"
	mgr.Resolve(owner)

	coll.Prime(owner, mgr.Generation(owner), []record{{id: "a"}})
	mgr.SignOut(owner)

	if _, ok := coll.Snapshot(owner); ok {
		t.Fatalf("expected no snapshot after sign-out")
	}
}

func TestCollectionDropsStaleFetch(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager()
	coll := newCollection(mgr)
	owner := "owner-1"
	mgr.Resolve(owner)

	// Busca iniciada antes do sign-out responde depois: o resultado é da
	// identidade anterior e não pode repovoar a coleção.
	staleGen := mgr.Generation(owner)
	mgr.SignOut(owner)
	mgr.Resolve(owner)

	if coll.Prime(owner, staleGen, []record{{id: "stale"}}) {
		t.Fatalf("expected stale prime to be dropped")
	}
	if _, ok := coll.Snapshot(owner); ok {
		t.Fatalf("expected collection to stay empty after stale prime")
	}

	if !coll.Prime(owner, mgr.Generation(owner), []record{{id: "fresh"}}) {
		t.Fatalf("expected current-generation prime to install")
	}
	items, ok := coll.Snapshot(owner)
	if !ok || len(items) != 1 || items[0].id != "fresh" {
		t.Fatalf("expected fresh snapshot, got %+v", items)
	}
}

func TestCollectionMutationBeforeLoadIsNoOp(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager()
	coll := newCollection(mgr)
	owner := "owner-1"
	mgr.Resolve(owner)

	coll.Prepend(owner, record{id: "a"})

	if _, ok := coll.Snapshot(owner); ok {
		t.Fatalf("expected no snapshot before prime")
	}
}
