package wred

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/seastack/ecnctl/internal/events"
	"github.com/seastack/ecnctl/internal/model"
	"github.com/seastack/ecnctl/internal/ui"
)

func TestMain(m *testing.M) {
	ui.ForceNoColor()
	os.Exit(m.Run())
}

type setCall struct {
	profile, field, value string
}

// mockStore implements store.Store for manager tests.
type mockStore struct {
	profiles []*model.Profile
	listErr  error
	setErr   error
	setCalls []setCall
}

func (m *mockStore) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return m.profiles, m.listErr
}

func (m *mockStore) SetProfileField(ctx context.Context, profile, field, value string) error {
	m.setCalls = append(m.setCalls, setCall{profile, field, value})
	return m.setErr
}

func (m *mockStore) Close() error { return nil }

// mockPublisher records published events.
type mockPublisher struct {
	published []any
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, event any) error {
	m.published = append(m.published, event)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

func azureProfile() *model.Profile {
	return &model.Profile{
		Name: "AZURE_LOSSLESS",
		Fields: []model.Field{
			{Name: "green_min_threshold", Value: "100"},
			{Name: "green_max_threshold", Value: "400"},
		},
	}
}

func TestList(t *testing.T) {
	st := &mockStore{profiles: []*model.Profile{azureProfile()}}
	var out bytes.Buffer
	mgr := New(st, &mockPublisher{}, Options{Out: &out})

	if err := mgr.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Profile: AZURE_LOSSLESS\n" +
		"green_min_threshold  100\n" +
		"green_max_threshold  400\n" +
		"\n"
	if out.String() != want {
		t.Errorf("List output = %q, want %q", out.String(), want)
	}
}

func TestList_Verbose(t *testing.T) {
	st := &mockStore{profiles: []*model.Profile{
		azureProfile(),
		{Name: "BULK", Fields: []model.Field{{Name: "red_max_threshold", Value: "900"}}},
	}}
	var out bytes.Buffer
	mgr := New(st, &mockPublisher{}, Options{Out: &out, Verbose: true})

	if err := mgr.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Total profiles: 2\n") {
		t.Errorf("verbose List output missing total: %q", out.String())
	}
}

func TestList_Empty(t *testing.T) {
	var out bytes.Buffer
	mgr := New(&mockStore{}, &mockPublisher{}, Options{Out: &out, Verbose: true})

	if err := mgr.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Total profiles: 0\n" {
		t.Errorf("List output = %q", out.String())
	}
}

func TestList_StoreError(t *testing.T) {
	wantErr := errors.New("dial tcp: connection refused")
	mgr := New(&mockStore{listErr: wantErr}, &mockPublisher{}, Options{})

	if err := mgr.List(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("got error %v, want %v", err, wantErr)
	}
}

func TestListJSON(t *testing.T) {
	st := &mockStore{profiles: []*model.Profile{azureProfile()}}
	var out bytes.Buffer
	mgr := New(st, &mockPublisher{}, Options{Out: &out})

	if err := mgr.ListJSON(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []*model.Profile
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "AZURE_LOSSLESS" || len(decoded[0].Fields) != 2 {
		t.Errorf("unexpected decoded profiles: %+v", decoded)
	}
}

func TestListJSON_Empty(t *testing.T) {
	var out bytes.Buffer
	mgr := New(&mockStore{}, &mockPublisher{}, Options{Out: &out})

	if err := mgr.ListJSON(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Errorf("empty ListJSON output = %q, want []", out.String())
	}
}

func TestSetThreshold(t *testing.T) {
	st := &mockStore{}
	pub := &mockPublisher{}
	var out bytes.Buffer
	mgr := New(st, pub, Options{Out: &out})

	if err := mgr.SetThreshold(context.Background(), "AZURE_LOSSLESS", "gmin", "200"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(st.setCalls) != 1 {
		t.Fatalf("got %d store calls, want 1", len(st.setCalls))
	}
	want := setCall{"AZURE_LOSSLESS", "green_min_threshold", "200"}
	if st.setCalls[0] != want {
		t.Errorf("store call = %+v, want %+v", st.setCalls[0], want)
	}

	if len(pub.published) != 1 {
		t.Fatalf("got %d published events, want 1", len(pub.published))
	}
	ev, ok := pub.published[0].(*events.ThresholdUpdated)
	if !ok || ev.Profile != "AZURE_LOSSLESS" || ev.Field != "green_min_threshold" || ev.Value != "200" {
		t.Errorf("unexpected event: %+v", pub.published[0])
	}

	// Not verbose: nothing printed.
	if out.Len() != 0 {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestSetThreshold_Verbose(t *testing.T) {
	var out bytes.Buffer
	mgr := New(&mockStore{}, &mockPublisher{}, Options{Out: &out, Verbose: true})

	if err := mgr.SetThreshold(context.Background(), "AZURE_LOSSLESS", "rmax", "500"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Setting red_max_threshold value to 500\n" {
		t.Errorf("verbose output = %q", out.String())
	}
}

func TestSetThreshold_UnknownCode(t *testing.T) {
	st := &mockStore{}
	mgr := New(st, &mockPublisher{}, Options{})

	err := mgr.SetThreshold(context.Background(), "AZURE_LOSSLESS", "gmid", "200")
	var ute *model.UnknownThresholdError
	if !errors.As(err, &ute) {
		t.Fatalf("got error %v, want UnknownThresholdError", err)
	}
	if len(st.setCalls) != 0 {
		t.Errorf("store was called %d times for an unknown code", len(st.setCalls))
	}
}

func TestSetThreshold_StoreError(t *testing.T) {
	wantErr := errors.New("write: broken pipe")
	st := &mockStore{setErr: wantErr}
	pub := &mockPublisher{}
	mgr := New(st, pub, Options{})

	if err := mgr.SetThreshold(context.Background(), "AZURE_LOSSLESS", "ymin", "50"); !errors.Is(err, wantErr) {
		t.Fatalf("got error %v, want %v", err, wantErr)
	}
	if len(pub.published) != 0 {
		t.Errorf("event published despite store failure")
	}
}

func TestSetThreshold_PublishFailureIsNonFatal(t *testing.T) {
	st := &mockStore{}
	pub := &mockPublisher{err: errors.New("nats: connection closed")}
	var errOut bytes.Buffer
	mgr := New(st, pub, Options{ErrOut: &errOut, Verbose: true, Out: new(bytes.Buffer)})

	if err := mgr.SetThreshold(context.Background(), "AZURE_LOSSLESS", "gmax", "400"); err != nil {
		t.Fatalf("publish failure should not fail the update: %v", err)
	}
	if len(st.setCalls) != 1 {
		t.Fatalf("got %d store calls, want 1", len(st.setCalls))
	}
	if !strings.Contains(errOut.String(), "publish threshold update") {
		t.Errorf("expected publish warning on stderr, got %q", errOut.String())
	}
}
