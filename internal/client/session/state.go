// Package session holds the in-memory session state: the authenticated
// identity and the viewer profile. The state object is created once and
// injected into every component that needs it; by convention only the auth
// flow mutates the identity and only the profile flow mutates the profile,
// everything else reads through the accessors.
package session

import (
	"sync"

	"github.com/dmsantos/moviestream/internal/client/models"
)

type State struct {
	mu       sync.RWMutex
	identity *models.Identity
	profile  *models.Profile
}

func NewState() *State {
	return &State{}
}

func (s *State) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *State) SetIdentity(id models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &id
}

// ClearIdentity drops the identity and any cached profile in one step.
// A profile must never outlive the identity it belongs to.
func (s *State) ClearIdentity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.profile = nil
}

func (s *State) Profile() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.Profile{}, false
	}
	return *s.profile, true
}

func (s *State) SetProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
}

func (s *State) ClearProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
}
