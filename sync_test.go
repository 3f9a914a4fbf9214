package labelsync

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	pkgerrors "github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// mockSource is an in-memory Source that records mutations. Safe for
// concurrent use so the worker-pool path can be tested.
type mockSource struct {
	mu      sync.Mutex
	labels  []labels.Label
	listErr error
	failOn  map[string]error

	creates []string
	updates []string
	deletes []string
}

func (m *mockSource) List(_ context.Context) ([]labels.Label, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]labels.Label(nil), m.labels...), nil
}

func (m *mockSource) Create(_ context.Context, label labels.Label) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[label.Name]; err != nil {
		return err
	}
	m.creates = append(m.creates, label.Name)
	return nil
}

func (m *mockSource) Update(_ context.Context, label labels.Label) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[label.Name]; err != nil {
		return err
	}
	m.updates = append(m.updates, label.Name)
	return nil
}

func (m *mockSource) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[name]; err != nil {
		return err
	}
	m.deletes = append(m.deletes, name)
	return nil
}

func (m *mockSource) mutations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.creates) + len(m.updates) + len(m.deletes)
}

// newTestClient builds a client over a mock source.
func newTestClient(t *testing.T, source *mockSource) Client {
	t.Helper()
	client, err := New(
		WithRepository("octo", "demo"),
		WithSource(source),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

// desiredFixture pairs with mockSource labels to yield one action of each kind.
func desiredFixture() []labels.Label {
	return []labels.Label{
		{Name: "bug", Color: "d73a4a"},
		{Name: "duplicate", Color: "cfd3d7"},
	}
}

func actualFixture() []labels.Label {
	return []labels.Label{
		{Name: "bug", Color: "fc2929"},
		{Name: "wontfix", Color: "ffffff"},
	}
}

func TestPlanComputesChanges(t *testing.T) {
	source := &mockSource{labels: actualFixture()}
	client := newTestClient(t, source)

	plan, err := client.Plan(context.Background(), pkgsync.WithLabels(desiredFixture()))
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if plan.Summary.Creates != 1 || plan.Summary.Updates != 1 || plan.Summary.Deletes != 1 {
		t.Errorf("Unexpected summary: %+v", plan.Summary)
	}
	if source.mutations() != 0 {
		t.Errorf("Plan must not mutate, got %d mutations", source.mutations())
	}
}

func TestPlanListFailure(t *testing.T) {
	source := &mockSource{listErr: pkgerrors.ErrUnavailable}
	client := newTestClient(t, source)

	_, err := client.Plan(context.Background(), pkgsync.WithLabels(desiredFixture()))
	if err == nil {
		t.Fatal("Expected error when listing fails")
	}

	var syncErr *pkgerrors.SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("Expected SyncError, got %T", err)
	}
	if syncErr.Repository != "octo/demo" {
		t.Errorf("Expected repository 'octo/demo', got '%s'", syncErr.Repository)
	}
	if !errors.Is(err, pkgerrors.ErrUnavailable) {
		t.Error("Expected wrapped ErrUnavailable")
	}
}

func TestSyncAppliesPlan(t *testing.T) {
	source := &mockSource{labels: actualFixture()}
	client := newTestClient(t, source)

	var buf bytes.Buffer
	result, err := client.Sync(context.Background(),
		pkgsync.WithLabels(desiredFixture()),
		pkgsync.WithOutput(&buf),
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	want := "CREATE duplicate: cfd3d7\nUPDATE bug: d73a4a\nDELETE wontfix\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\ngot  %q\nwant %q", buf.String(), want)
	}

	if len(source.creates) != 1 || source.creates[0] != "duplicate" {
		t.Errorf("Unexpected creates: %v", source.creates)
	}
	if len(source.updates) != 1 || source.updates[0] != "bug" {
		t.Errorf("Unexpected updates: %v", source.updates)
	}
	if len(source.deletes) != 1 || source.deletes[0] != "wontfix" {
		t.Errorf("Unexpected deletes: %v", source.deletes)
	}

	if result.RunID == "" {
		t.Error("Expected a run ID")
	}
	if result.Repository != "octo/demo" {
		t.Errorf("Expected repository 'octo/demo', got '%s'", result.Repository)
	}
	if result.Applied() != 3 || result.Failed() != 0 {
		t.Errorf("Expected 3 applied and 0 failed, got %d and %d", result.Applied(), result.Failed())
	}
}

func TestSyncDryRun(t *testing.T) {
	source := &mockSource{labels: actualFixture()}
	client := newTestClient(t, source)

	var buf bytes.Buffer
	result, err := client.Sync(context.Background(),
		pkgsync.WithLabels(desiredFixture()),
		pkgsync.WithDryRun(true),
		pkgsync.WithOutput(&buf),
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	want := "[DRY RUN] CREATE duplicate: cfd3d7\n[DRY RUN] UPDATE bug: d73a4a\n[DRY RUN] DELETE wontfix\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\ngot  %q\nwant %q", buf.String(), want)
	}

	if source.mutations() != 0 {
		t.Errorf("Dry run must not mutate, got %d mutations", source.mutations())
	}
	if !result.DryRun {
		t.Error("Expected result to be marked dry run")
	}
	for i := range result.Outcomes {
		if result.Outcomes[i].Applied {
			t.Errorf("Outcome %d marked applied during dry run", i)
		}
	}
}

func TestSyncEmptyPlanPrintsNothing(t *testing.T) {
	inSync := []labels.Label{{Name: "bug", Color: "fc2929"}}
	source := &mockSource{labels: inSync}
	client := newTestClient(t, source)

	var buf bytes.Buffer
	result, err := client.Sync(context.Background(),
		pkgsync.WithLabels(inSync),
		pkgsync.WithOutput(&buf),
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("Expected no output for empty plan, got %q", buf.String())
	}
	if result.HasChanges() {
		t.Error("Expected no changes")
	}
	if source.mutations() != 0 {
		t.Errorf("Expected no mutations, got %d", source.mutations())
	}
}

func TestSyncContinuesAfterFailure(t *testing.T) {
	source := &mockSource{
		labels: actualFixture(),
		failOn: map[string]error{"duplicate": pkgerrors.ErrUnavailable},
	}
	client := newTestClient(t, source)

	var buf bytes.Buffer
	result, err := client.Sync(context.Background(),
		pkgsync.WithLabels(desiredFixture()),
		pkgsync.WithOutput(&buf),
	)
	if err == nil {
		t.Fatal("Expected an aggregate error")
	}

	var applyErr *pkgerrors.ApplyError
	if !errors.As(err, &applyErr) {
		t.Fatalf("Expected ApplyError, got %T", err)
	}
	if applyErr.Failed != 1 || applyErr.Total != 3 {
		t.Errorf("Expected 1 of 3 failed, got %d of %d", applyErr.Failed, applyErr.Total)
	}
	if !errors.Is(err, pkgerrors.ErrUnavailable) {
		t.Error("Expected the source error in the chain")
	}

	// The failure did not stop the remaining actions
	if len(source.updates) != 1 || len(source.deletes) != 1 {
		t.Errorf("Expected update and delete to proceed, got updates=%v deletes=%v",
			source.updates, source.deletes)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 output lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "FAILURE CREATE duplicate: service unavailable" {
		t.Errorf("Unexpected failure line: %q", lines[0])
	}

	if result.Failed() != 1 || result.Applied() != 2 {
		t.Errorf("Expected 1 failed and 2 applied, got %d and %d", result.Failed(), result.Applied())
	}
}

func TestSyncConcurrentApply(t *testing.T) {
	desired := []labels.Label{
		{Name: "a", Color: "aaaaaa"},
		{Name: "b", Color: "bbbbbb"},
		{Name: "c", Color: "cccccc"},
		{Name: "d", Color: "dddddd"},
		{Name: "e", Color: "eeeeee"},
	}
	source := &mockSource{}
	client := newTestClient(t, source)

	var buf bytes.Buffer
	result, err := client.Sync(context.Background(),
		pkgsync.WithLabels(desired),
		pkgsync.WithConcurrency(3),
		pkgsync.WithOutput(&buf),
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	if len(source.creates) != len(desired) {
		t.Errorf("Expected %d creates, got %d", len(desired), len(source.creates))
	}
	if result.Applied() != len(desired) {
		t.Errorf("Expected %d applied, got %d", len(desired), result.Applied())
	}

	// Outcomes land at their plan index regardless of completion order
	actions := result.Plan.Actions()
	for i := range result.Outcomes {
		if result.Outcomes[i].Action != actions[i] {
			t.Errorf("Outcome %d out of plan order: %+v", i, result.Outcomes[i].Action)
		}
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(desired) {
		t.Errorf("Expected %d whole output lines, got %d", len(desired), len(lines))
	}
}

func TestSyncSuppressions(t *testing.T) {
	source := &mockSource{labels: actualFixture()}
	client := newTestClient(t, source)

	var buf bytes.Buffer
	_, err := client.Sync(context.Background(),
		pkgsync.WithLabels(desiredFixture()),
		pkgsync.WithCreates(false),
		pkgsync.WithDeletes(false),
		pkgsync.WithOutput(&buf),
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	// Updates survive suppression of creates and deletes
	if buf.String() != "UPDATE bug: d73a4a\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
	if len(source.creates) != 0 || len(source.deletes) != 0 {
		t.Errorf("Suppressed actions ran: creates=%v deletes=%v", source.creates, source.deletes)
	}
}

func TestSyncLoadsTemplateFile(t *testing.T) {
	source := &mockSource{}
	client := newTestClient(t, source)

	path := filepath.Join(t.TempDir(), "labels.yaml")
	template := "- name: bug\n  color: fc2929\n"
	if err := os.WriteFile(path, []byte(template), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var buf bytes.Buffer
	_, err := client.Sync(context.Background(),
		pkgsync.WithTemplateFile(path),
		pkgsync.WithOutput(&buf),
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	if buf.String() != "CREATE bug: fc2929\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestSyncMissingTemplateFile(t *testing.T) {
	source := &mockSource{}
	client := newTestClient(t, source)

	_, err := client.Sync(context.Background(),
		pkgsync.WithTemplateFile(filepath.Join(t.TempDir(), "missing.yaml")),
	)
	if err == nil {
		t.Fatal("Expected error for missing template")
	}

	var ioErr *pkgerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected IOError, got %T", err)
	}
	if source.mutations() != 0 {
		t.Error("Expected no mutations after load failure")
	}
}
