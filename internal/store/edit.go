package store

import (
	"context"
	"fmt"
)

// StartEdit puts one item into edit mode and returns its current text as the
// initial edit buffer. Only one item is editable at a time: starting an edit
// on a new item silently abandons the previous buffer. This is intentional;
// there is no confirmation.
func (s *Store) StartEdit(contentID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == contentID {
			s.editID = contentID
			s.editText = item.Content
			s.editing = true
			return s.editText, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrItemNotFound, contentID)
}

// EditingID returns the active edit target, if any.
func (s *Store) EditingID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editID, s.editing
}

// EditText returns the current edit buffer.
func (s *Store) EditText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editText
}

// SetEditText replaces the edit buffer. No-op when nothing is being edited.
func (s *Store) SetEditText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		s.editText = text
	}
}

// CancelEdit discards the edit buffer without any backend call.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editID = ""
	s.editText = ""
	s.editing = false
}

// SaveEdit submits the edit buffer as the item's full replacement text, then
// reloads the list. The edit session ends only on success; a failed save
// keeps the buffer so the user can retry.
func (s *Store) SaveEdit(ctx context.Context) error {
	s.mu.Lock()
	if !s.editing {
		s.mu.Unlock()
		return fmt.Errorf("no edit in progress")
	}
	contentID := s.editID
	text := s.editText
	s.mu.Unlock()

	if err := s.acquire(contentID, nil); err != nil {
		return err
	}
	defer s.release(contentID, nil)

	if err := s.api.EditContent(ctx, contentID, text); err != nil {
		return err
	}

	s.mu.Lock()
	// Another StartEdit may have claimed the session while the save was in
	// flight; only clear it if it still belongs to this item.
	if s.editing && s.editID == contentID {
		s.editID = ""
		s.editText = ""
		s.editing = false
	}
	s.mu.Unlock()

	return s.Load(ctx)
}
