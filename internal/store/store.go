// Package store holds the pending-content list for the selected client filter
// and layers per-item transient display flags over the API client's mutations.
// The list is only ever replaced wholesale: every mutation is followed by a
// full reload under the filter selected at reload time.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/marketing-agent/internal/types"
)

// ContentAPI is the slice of the backend client the store depends on.
type ContentAPI interface {
	PendingContent(ctx context.Context, clientID string) ([]types.ContentItem, error)
	ApproveContent(ctx context.Context, contentID string) error
	EditContent(ctx context.Context, contentID, content string) error
	DeleteContent(ctx context.Context, contentID string) error
	RegenerateContent(ctx context.Context, contentID string, platform types.Platform, contentType types.ContentType) error
}

// ErrItemBusy is returned when a mutation is requested for an item that
// already has one in flight. Mutations on distinct items run independently.
var ErrItemBusy = errors.New("item has an operation in flight")

// ErrItemNotFound is returned when an operation targets an item absent from
// the current list.
var ErrItemNotFound = errors.New("content item not found")

// Store is the in-memory pending-content list. Safe for concurrent use.
type Store struct {
	api ContentAPI

	mu           sync.Mutex
	filter       string
	items        []types.ContentItem
	loadGen      int
	busy         map[string]struct{}
	regenerating map[string]struct{}
	posting      map[string]struct{}

	editID   string
	editText string
	editing  bool
}

// New creates a store over the given API slice, filtered to all clients.
func New(api ContentAPI) *Store {
	return &Store{
		api:          api,
		filter:       types.AllClients,
		busy:         make(map[string]struct{}),
		regenerating: make(map[string]struct{}),
		posting:      make(map[string]struct{}),
	}
}

// Filter returns the currently selected client filter.
func (s *Store) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter selects a client filter. The list is not refreshed here; callers
// follow up with Load. Changing the filter invalidates any load in flight so
// its result cannot overwrite a newer filter's list.
func (s *Store) SetFilter(filter string) {
	if filter == "" {
		filter = types.AllClients
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if filter != s.filter {
		s.filter = filter
		s.loadGen++
	}
}

// Load replaces the entire list with a fresh fetch under the filter selected
// at the time of the call. A load whose filter was changed mid-flight
// discards its result.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	filter := s.filter
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	items, err := s.api.PendingContent(ctx, filter)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return nil
	}
	s.items = items
	return nil
}

// Items returns a copy of the current list.
func (s *Store) Items() []types.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]types.ContentItem, len(s.items))
	copy(items, s.items)
	return items
}

// Item looks up one item by identifier in the current list.
func (s *Store) Item(contentID string) (types.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == contentID {
			return item, true
		}
	}
	return types.ContentItem{}, false
}

// IsRegenerating reports whether the item has a regenerate in flight.
func (s *Store) IsRegenerating(contentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.regenerating[contentID]
	return ok
}

// IsPosting reports whether the item has an approval posting in flight.
func (s *Store) IsPosting(contentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.posting[contentID]
	return ok
}

// acquire claims the per-item operation lock, preventing overlapping
// mutations on one item. flag, when non-nil, additionally records the item
// in a transient display set.
func (s *Store) acquire(contentID string, flag map[string]struct{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, inFlight := s.busy[contentID]; inFlight {
		return fmt.Errorf("%w: %s", ErrItemBusy, contentID)
	}
	s.busy[contentID] = struct{}{}
	if flag != nil {
		flag[contentID] = struct{}{}
	}
	return nil
}

func (s *Store) release(contentID string, flag map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, contentID)
	if flag != nil {
		delete(flag, contentID)
	}
}

// Approve approves one item. The posting flag stays set for the duration of
// the backend call and the follow-up reload, then clears regardless of
// outcome so the UI returns to a retryable state.
func (s *Store) Approve(ctx context.Context, contentID string) error {
	if err := s.acquire(contentID, s.posting); err != nil {
		return err
	}
	defer s.release(contentID, s.posting)

	if err := s.api.ApproveContent(ctx, contentID); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes one item. Confirmation happens before dispatch, at the CLI.
func (s *Store) Delete(ctx context.Context, contentID string) error {
	if err := s.acquire(contentID, nil); err != nil {
		return err
	}
	defer s.release(contentID, nil)

	if err := s.api.DeleteContent(ctx, contentID); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Regenerate requests new content for one item. The regenerating flag for
// this item is independent of every other item's flags, so concurrent
// regenerations display independently.
func (s *Store) Regenerate(ctx context.Context, contentID string, platform types.Platform, contentType types.ContentType) error {
	if err := s.acquire(contentID, s.regenerating); err != nil {
		return err
	}
	defer s.release(contentID, s.regenerating)

	if err := s.api.RegenerateContent(ctx, contentID, platform, contentType); err != nil {
		return err
	}
	return s.Load(ctx)
}
