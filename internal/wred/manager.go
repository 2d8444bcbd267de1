// Package wred implements the WRED profile manager, the single point of
// contact with the configuration store.
package wred

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/seastack/ecnctl/internal/events"
	"github.com/seastack/ecnctl/internal/model"
	"github.com/seastack/ecnctl/internal/store"
	"github.com/seastack/ecnctl/internal/ui"
)

// Options controls manager output. Out and ErrOut default to discarding
// writers when nil so tests can opt in selectively.
type Options struct {
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
}

// Manager exposes the two profile operations: enumerate profiles and
// merge-update one threshold field of a named profile.
type Manager struct {
	store   store.Store
	events  events.Publisher
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

func New(s store.Store, pub events.Publisher, opts Options) *Manager {
	m := &Manager{
		store:   s,
		events:  pub,
		out:     opts.Out,
		errOut:  opts.ErrOut,
		verbose: opts.Verbose,
	}
	if m.out == nil {
		m.out = io.Discard
	}
	if m.errOut == nil {
		m.errOut = io.Discard
	}
	return m
}

// List prints every profile as a "Profile: <name>" header followed by an
// aligned two-column (field, value) grid and a blank line. Fields appear in
// store order; profiles with no fields still get their header. Read-only.
func (m *Manager) List(ctx context.Context) error {
	profiles, err := m.store.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	for _, p := range profiles {
		fmt.Fprintln(m.out, ui.RenderHeader("Profile: "+p.Name))
		w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
		for _, f := range p.Fields {
			fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Value)
		}
		w.Flush()
		fmt.Fprintln(m.out)
	}

	if m.verbose {
		fmt.Fprintln(m.out, ui.RenderMuted(fmt.Sprintf("Total profiles: %d", len(profiles))))
	}
	return nil
}

// ListJSON prints every profile as indented JSON.
func (m *Manager) ListJSON(ctx context.Context) error {
	profiles, err := m.store.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []*model.Profile{}
	}
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	fmt.Fprintln(m.out, string(data))
	return nil
}

// SetThreshold merge-updates one threshold field of the named profile. The
// short code is resolved first and rejected before any store access; the
// value is passed through as an opaque string. On success a change event is
// published; publish failures never fail the update since the store
// mutation has already happened.
func (m *Manager) SetThreshold(ctx context.Context, profile, code, value string) error {
	t, err := model.ParseThreshold(code)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.out, "Setting %s value to %s\n", t.Field(), value)
	}

	if err := m.store.SetProfileField(ctx, profile, t.Field(), value); err != nil {
		return fmt.Errorf("set %s on profile %s: %w", t.Field(), profile, err)
	}

	event := &events.ThresholdUpdated{Profile: profile, Field: t.Field(), Value: value}
	if err := m.events.Publish(ctx, events.TopicThresholdUpdated, event); err != nil && m.verbose {
		fmt.Fprintf(m.errOut, "warning: publish threshold update: %v\n", err)
	}
	return nil
}
