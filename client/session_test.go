package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SessionTestSuite struct {
	suite.Suite
	orgA uuid.UUID
	orgB uuid.UUID
	orgC uuid.UUID
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.orgA = uuid.New()
	s.orgB = uuid.New()
	s.orgC = uuid.New()
}

func (s *SessionTestSuite) membership(id uuid.UUID, name string) Membership {
	return Membership{
		Organization: Organization{ID: id, Name: name, DisplayName: name, PlanType: "trial"},
		Role:         "member",
	}
}

// listServer serves the given memberships on the organizations endpoint.
func (s *SessionTestSuite) listServer(memberships []Membership) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(memberships)
	})
	return httptest.NewServer(mux)
}

func (s *SessionTestSuite) TestLoad_NoPersistedSelection_PicksFirst() {
	server := s.listServer([]Membership{
		s.membership(s.orgA, "a"),
		s.membership(s.orgB, "b"),
		s.membership(s.orgC, "c"),
	})
	defer server.Close()

	session := NewSession(New(server.URL, "token"), NewMemorySelectionStore())
	err := session.Load(context.Background())

	s.NoError(err)
	s.True(session.Loaded())
	s.Equal(s.orgA, session.CurrentID())
}

func (s *SessionTestSuite) TestLoad_PersistedSelectionRestored() {
	server := s.listServer([]Membership{
		s.membership(s.orgA, "a"),
		s.membership(s.orgB, "b"),
		s.membership(s.orgC, "c"),
	})
	defer server.Close()

	store := NewMemorySelectionStore()
	s.Require().NoError(store.Save(s.orgB.String()))

	session := NewSession(New(server.URL, "token"), store)
	s.Require().NoError(session.Load(context.Background()))

	s.Equal(s.orgB, session.CurrentID())
}

func (s *SessionTestSuite) TestLoad_PersistedSelectionAbsent_FallsBackToFirst() {
	server := s.listServer([]Membership{
		s.membership(s.orgA, "a"),
		s.membership(s.orgB, "b"),
		s.membership(s.orgC, "c"),
	})
	defer server.Close()

	store := NewMemorySelectionStore()
	s.Require().NoError(store.Save(uuid.New().String()))

	session := NewSession(New(server.URL, "token"), store)
	s.Require().NoError(session.Load(context.Background()))

	s.Equal(s.orgA, session.CurrentID())
}

func (s *SessionTestSuite) TestLoad_DeduplicatesPreservingFirstOccurrence() {
	first := s.membership(s.orgA, "a")
	duplicate := s.membership(s.orgA, "a")
	duplicate.Role = "admin"

	server := s.listServer([]Membership{first, s.membership(s.orgB, "b"), duplicate})
	defer server.Close()

	session := NewSession(New(server.URL, "token"), NewMemorySelectionStore())
	s.Require().NoError(session.Load(context.Background()))

	memberships := session.Memberships()
	s.Len(memberships, 2)
	s.Equal(s.orgA, memberships[0].Organization.ID)
	s.Equal("member", memberships[0].Role) // first occurrence wins
	s.Equal(s.orgB, memberships[1].Organization.ID)
}

func (s *SessionTestSuite) TestLoad_EmptyList() {
	server := s.listServer([]Membership{})
	defer server.Close()

	session := NewSession(New(server.URL, "token"), NewMemorySelectionStore())
	s.Require().NoError(session.Load(context.Background()))

	s.Empty(session.Memberships())
	s.Equal(uuid.Nil, session.CurrentID())
	_, ok := session.Current()
	s.False(ok)
}

func (s *SessionTestSuite) TestLoad_FetchFailure_LoadedWithEmptyList() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	session := NewSession(New(server.URL, "token"), NewMemorySelectionStore())
	err := session.Load(context.Background())

	s.Error(err)
	s.True(session.Loaded())
	s.Empty(session.Memberships())
	s.Equal(uuid.Nil, session.CurrentID())
}

func (s *SessionTestSuite) TestRefresh_FailureKeepsPreviousList() {
	var failing atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Membership{
			s.membership(s.orgA, "a"),
			s.membership(s.orgB, "b"),
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	session := NewSession(New(server.URL, "token"), NewMemorySelectionStore())
	s.Require().NoError(session.Load(context.Background()))
	session.Switch(s.orgB)

	failing.Store(true)
	err := session.Refresh(context.Background())

	// The stale view survives until the next successful refetch.
	s.Error(err)
	s.Len(session.Memberships(), 2)
	s.Equal(s.orgB, session.CurrentID())
}

func (s *SessionTestSuite) TestSwitch_AbsentID_NoOp() {
	server := s.listServer([]Membership{
		s.membership(s.orgA, "a"),
		s.membership(s.orgB, "b"),
	})
	defer server.Close()

	store := NewMemorySelectionStore()
	session := NewSession(New(server.URL, "token"), store)
	s.Require().NoError(session.Load(context.Background()))

	session.Switch(uuid.New())

	s.Equal(s.orgA, session.CurrentID())
	saved, _ := store.Load()
	s.Empty(saved, "no-op switch must not persist anything")
}

func (s *SessionTestSuite) TestSwitch_PresentID_SelectsAndPersists() {
	server := s.listServer([]Membership{
		s.membership(s.orgA, "a"),
		s.membership(s.orgB, "b"),
	})
	defer server.Close()

	store := NewMemorySelectionStore()
	session := NewSession(New(server.URL, "token"), store)
	s.Require().NoError(session.Load(context.Background()))

	session.Switch(s.orgB)

	s.Equal(s.orgB, session.CurrentID())
	saved, err := store.Load()
	s.NoError(err)
	s.Equal(s.orgB.String(), saved)
}

func (s *SessionTestSuite) TestRefresh_UpdatesSelectedOrganizationDetail() {
	memberships := []Membership{s.membership(s.orgA, "a")}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(memberships)
	})
	mux.HandleFunc("/api/v1/organizations/"+s.orgA.String(), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Organization{
			ID: s.orgA, Name: "a", DisplayName: "a",
			PlanType: "professional", SubscriptionStatus: "active", MaxPackagesMonthly: 1000,
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	session := NewSession(New(server.URL, "token"), NewMemorySelectionStore())
	s.Require().NoError(session.Load(context.Background()))

	s.Require().NoError(session.Refresh(context.Background()))

	org, ok := session.Current()
	s.True(ok)
	s.Equal("professional", org.PlanType)
	s.Equal(1000, org.MaxPackagesMonthly)
}

func (s *SessionTestSuite) TestFileSelectionStore_RoundTrip() {
	path := s.T().TempDir() + "/selection"
	store := NewFileSelectionStore(path)

	saved, err := store.Load()
	s.NoError(err)
	s.Empty(saved, "missing file reads as no selection")

	s.Require().NoError(store.Save(s.orgA.String()))
	saved, err = store.Load()
	s.NoError(err)
	s.Equal(s.orgA.String(), saved)
}
