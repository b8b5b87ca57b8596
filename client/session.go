package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session resolves and exposes the current organization for tenant-scoped
// calls. The active organization is client-side state: it is persisted in the
// SelectionStore, restored on load, and falls back to the first membership
// when the saved one is no longer valid.
type Session struct {
	client *Client
	store  SelectionStore
	log    *logrus.Entry

	mu          sync.RWMutex
	memberships []Membership
	current     uuid.UUID
	loaded      bool
}

// NewSession creates a session over the given client and selection store.
func NewSession(client *Client, store SelectionStore) *Session {
	return &Session{
		client: client,
		store:  store,
		log:    logrus.WithField("component", "session"),
	}
}

// dedupeMemberships drops repeated organization ids, keeping the first
// occurrence. The list endpoint should never return duplicates; when it does,
// the occurrence is logged rather than silently masked so the upstream bug
// stays visible.
func (s *Session) dedupeMemberships(memberships []Membership) []Membership {
	seen := make(map[uuid.UUID]struct{}, len(memberships))
	out := memberships[:0:0]
	for _, m := range memberships {
		if _, dup := seen[m.Organization.ID]; dup {
			s.log.WithField("organization_id", m.Organization.ID).
				Warn("duplicate organization in membership list, dropping repeat")
			continue
		}
		seen[m.Organization.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Load fetches the user's memberships and resolves the selection. A failed
// initial load leaves the session loaded with an empty list; once a list has
// been loaded, later failures keep the previous view — a stale list until the
// next refetch beats losing the selection.
func (s *Session) Load(ctx context.Context) error {
	memberships, err := s.client.ListOrganizations(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if !s.loaded {
			s.loaded = true
			s.memberships = nil
			s.current = uuid.Nil
		}
		return err
	}

	s.loaded = true
	s.memberships = s.dedupeMemberships(memberships)
	s.resolveSelectionLocked()
	return nil
}

// resolveSelectionLocked picks the active organization: keep the current one
// if still present, otherwise restore the persisted selection, otherwise the
// first membership in list order. Callers hold s.mu.
func (s *Session) resolveSelectionLocked() {
	if len(s.memberships) == 0 {
		s.current = uuid.Nil
		return
	}

	if s.current != uuid.Nil && s.containsLocked(s.current) {
		return
	}

	if saved, err := s.store.Load(); err == nil && saved != "" {
		if id, parseErr := uuid.Parse(saved); parseErr == nil && s.containsLocked(id) {
			s.current = id
			return
		}
	}

	s.current = s.memberships[0].Organization.ID
}

func (s *Session) containsLocked(id uuid.UUID) bool {
	for _, m := range s.memberships {
		if m.Organization.ID == id {
			return true
		}
	}
	return false
}

// Switch sets the current selection to the matching organization and persists
// it. Switching to an id absent from the list is silently ignored.
func (s *Session) Switch(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.containsLocked(id) {
		return
	}
	s.current = id
	if err := s.store.Save(id.String()); err != nil {
		s.log.WithError(err).Warn("failed to persist organization selection")
	}
}

// Refresh refetches the membership list and the selected organization's
// detail. Used after billing-state-changing actions so webhook-driven plan
// updates become visible without waiting for the next interval.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == uuid.Nil {
		return nil
	}

	org, err := s.client.GetOrganization(ctx, current)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memberships {
		if s.memberships[i].Organization.ID == org.ID {
			s.memberships[i].Organization = *org
			break
		}
	}
	return nil
}

// AutoRefresh refreshes the session on a fixed interval until the context is
// canceled. Refresh failures are logged and the next tick retries.
func (s *Session) AutoRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.log.WithError(err).Warn("session refresh failed")
				}
			}
		}
	}()
}

// Loaded reports whether the initial load has completed, successfully or not.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Memberships returns the deduplicated membership list in fetch order.
func (s *Session) Memberships() []Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Membership, len(s.memberships))
	copy(out, s.memberships)
	return out
}

// Current returns the selected organization, or false when none is selected.
func (s *Session) Current() (Organization, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.memberships {
		if m.Organization.ID == s.current {
			return m.Organization, true
		}
	}
	return Organization{}, false
}

// CurrentID returns the selected organization id, uuid.Nil when none.
func (s *Session) CurrentID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
