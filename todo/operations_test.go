package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(nil)
}

func assertUniqueIDs(t *testing.T, todos []Todo) {
	t.Helper()
	seen := make(map[string]bool)
	for _, td := range todos {
		if seen[td.ID] {
			t.Fatalf("duplicate ID %q in list", td.ID)
		}
		seen[td.ID] = true
	}
}

func TestAdd(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if created.ID == "" {
		t.Error("expected generated ID")
	}
	if created.Text != "buy milk" {
		t.Errorf("expected text %q, got %q", "buy milk", created.Text)
	}
	if created.Completed {
		t.Error("new todo should not be completed")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.AIGenerated {
		t.Error("manually added todo should not be marked AI generated")
	}
}

func TestAdd_Prepends(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("first"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add("second"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	todos := store.Todos()
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].Text != "second" || todos[1].Text != "first" {
		t.Errorf("expected newest first, got %q then %q", todos[0].Text, todos[1].Text)
	}
}

func TestAdd_TrimsText(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("  walk the dog  ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.Text != "walk the dog" {
		t.Errorf("expected trimmed text, got %q", created.Text)
	}
}

func TestAdd_RejectsBlankText(t *testing.T) {
	store := newTestStore(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := store.Add(input); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Add(%q): expected ErrEmptyText, got %v", input, err)
		}
	}

	if got := store.TotalCount(); got != 0 {
		t.Fatalf("expected list unchanged, got %d todos", got)
	}
}

func TestAdd_RejectsOverlongText(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add(strings.Repeat("x", MaxTextLength+1)); !errors.Is(err, ErrTextTooLong) {
		t.Fatalf("expected ErrTextTooLong, got %v", err)
	}
	if got := store.TotalCount(); got != 0 {
		t.Fatalf("expected list unchanged, got %d todos", got)
	}
}

func TestToggle(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	toggled, err := store.Toggle(created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected todo to be completed after toggle")
	}

	toggled, err = store.Toggle(created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if toggled.Completed {
		t.Error("expected todo to be active after second toggle")
	}
}

func TestToggle_AbsentIDIsNoop(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("buy milk"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := store.Toggle("no-such-id"); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if store.Todos()[0].Completed {
		t.Error("toggle of absent ID must not change other todos")
	}
}

func TestEdit(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	edited, err := store.Edit(created.ID, "buy oat milk")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if edited.Text != "buy oat milk" {
		t.Errorf("expected edited text, got %q", edited.Text)
	}
	if !edited.CreatedAt.Equal(created.CreatedAt) {
		t.Error("edit must not change CreatedAt")
	}
	if edited.ID != created.ID {
		t.Error("edit must not change ID")
	}
}

func TestEdit_AbsentIDIsNoop(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Edit("no-such-id", "text"); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add("call dentist"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := store.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	todos := store.Todos()
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	if todos[0].Text != "call dentist" {
		t.Errorf("deleted the wrong todo, remaining %q", todos[0].Text)
	}
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("buy milk"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := store.Delete("no-such-id"); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if got := store.TotalCount(); got != 1 {
		t.Fatalf("expected list unchanged, got %d todos", got)
	}
}

func TestBulkInsert_PrependsPreservingOrder(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("existing"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	now := time.Now()
	store.BulkInsert([]Todo{
		{ID: "gen-1", Text: "step one", CreatedAt: now, AIGenerated: true},
		{ID: "gen-2", Text: "step two", CreatedAt: now, AIGenerated: true},
	})

	todos := store.Todos()
	if len(todos) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(todos))
	}
	if todos[0].ID != "gen-1" || todos[1].ID != "gen-2" {
		t.Errorf("bulk insert must preserve relative order, got %q then %q", todos[0].ID, todos[1].ID)
	}
	if todos[2].Text != "existing" {
		t.Errorf("existing todos must follow inserted ones, got %q", todos[2].Text)
	}
}

func TestBulkInsert_EmptyIsNoop(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("existing"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	store.BulkInsert(nil)

	if got := store.TotalCount(); got != 1 {
		t.Fatalf("expected list unchanged, got %d todos", got)
	}
}

func TestClearCompleted(t *testing.T) {
	store := newTestStore(t)

	first, _ := store.Add("first")
	if _, err := store.Add("second"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	third, _ := store.Add("third")

	if _, err := store.Toggle(first.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := store.Toggle(third.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	removed := store.ClearCompleted()
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	todos := store.Todos()
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	if todos[0].Text != "second" {
		t.Errorf("expected active todo to survive, got %q", todos[0].Text)
	}
}

func TestClearCompleted_NothingCompleted(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("first"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if removed := store.ClearCompleted(); removed != 0 {
		t.Fatalf("expected 0 removed, got %d", removed)
	}
	if got := store.TotalCount(); got != 1 {
		t.Fatalf("expected list unchanged, got %d todos", got)
	}
}

func TestMutationSequenceKeepsIDsUnique(t *testing.T) {
	store := newTestStore(t)

	a, _ := store.Add("a")
	b, _ := store.Add("b")
	assertUniqueIDs(t, store.Todos())

	if _, err := store.Toggle(a.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	assertUniqueIDs(t, store.Todos())

	if _, err := store.Edit(b.ID, "b edited"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	assertUniqueIDs(t, store.Todos())

	if err := store.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	assertUniqueIDs(t, store.Todos())

	store.BulkInsert([]Todo{{ID: "gen-1", Text: "gen"}})
	assertUniqueIDs(t, store.Todos())

	// b must still be present: nothing removed it.
	if store.Find(b.ID) == nil {
		t.Fatal("expected unremoved todo to still be present")
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("original"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	before := store.Todos()
	if _, err := store.Edit(before[0].ID, "changed"); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if before[0].Text != "original" {
		t.Error("earlier snapshot must not observe later mutations")
	}

	// Mutating a returned slice must not leak into the store.
	after := store.Todos()
	after[0].Text = "scribbled"
	if store.Todos()[0].Text != "changed" {
		t.Error("store state must not be affected by caller mutation")
	}
}
