// Package session holds per-visitor search state: the last search term, the
// current page and the page size. State values are immutable; every change
// returns a new State that the caller saves back to the Store.
package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PageSizes are the allowed search page sizes.
var PageSizes = []int{10, 25, 50, 100}

// ErrInvalidPageSize is returned for a page size outside PageSizes.
var ErrInvalidPageSize = errors.New("invalid page size")

// State is one visitor's search position.
type State struct {
	ID         string    `json:"id"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	LastSearch string    `json:"last_search"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// WithSearch records term. A different term moves back to page 1.
func (s State) WithSearch(term string) State {
	term = strings.TrimSpace(term)
	if term != s.LastSearch {
		s.Page = 1
	}
	s.LastSearch = term
	return s
}

// WithPage moves to page, clamped to at least 1.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// WithPageSize changes the page size and returns to page 1 when it differs.
func (s State) WithPageSize(size int) (State, error) {
	if !ValidPageSize(size) {
		return s, fmt.Errorf("%w: %d (allowed %v)", ErrInvalidPageSize, size, PageSizes)
	}
	if size != s.PageSize {
		s.Page = 1
	}
	s.PageSize = size
	return s, nil
}

// Offset is the index of the first row on the current page.
func (s State) Offset() int {
	if s.Page < 1 {
		return 0
	}
	return (s.Page - 1) * s.PageSize
}

// TotalPages returns the page count for total rows, at least 1.
func (s State) TotalPages(total int) int {
	if s.PageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + s.PageSize - 1) / s.PageSize
}

// Store keeps session state in memory and expires idle sessions.
type Store struct {
	mu              sync.Mutex
	sessions        map[string]State
	ttl             time.Duration
	defaultPageSize int
	now             func() time.Time
}

// NewStore creates a Store. defaultPageSize must be one of PageSizes.
func NewStore(ttl time.Duration, defaultPageSize int) (*Store, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %v", ttl)
	}
	if !ValidPageSize(defaultPageSize) {
		return nil, fmt.Errorf("%w: %d (allowed %v)", ErrInvalidPageSize, defaultPageSize, PageSizes)
	}
	return &Store{
		sessions:        make(map[string]State),
		ttl:             ttl,
		defaultPageSize: defaultPageSize,
		now:             time.Now,
	}, nil
}

// Get returns the state for id. An unknown or expired id yields a fresh
// state with a new ID, which is not stored until Save.
func (s *Store) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.sessions[id]; ok {
		if s.now().Sub(st.UpdatedAt) <= s.ttl {
			return st
		}
		delete(s.sessions, id)
	}
	return State{
		ID:       uuid.NewString(),
		Page:     1,
		PageSize: s.defaultPageSize,
	}
}

// Save stores st and drops any expired sessions.
func (s *Store) Save(st State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	st.UpdatedAt = now
	s.sessions[st.ID] = st

	for id, other := range s.sessions {
		if now.Sub(other.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
	return st
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
