package client

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"sync"
)

// CommentStore keeps the comments of the blog being viewed in sync with the server.
type CommentStore struct {
	client   *Client
	notifier Notifier
	loading  inflight

	mu       sync.RWMutex
	comments []*Comment
}

// NewCommentStore creates an empty store.
func NewCommentStore(client *Client, notifier Notifier) *CommentStore {
	return &CommentStore{client: client, notifier: notifierOrNop(notifier)}
}

// Comments returns a copy of the loaded comments.
func (s *CommentStore) Comments() []*Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.comments)
}

// Loading reports whether a comment call is in flight.
func (s *CommentStore) Loading() bool {
	return s.loading.active()
}

// Load replaces the local list with the comments of blogID. No session is needed.
func (s *CommentStore) Load(ctx context.Context, blogID string) ([]*Comment, error) {
	defer s.loading.begin()()

	var out struct {
		Comments []*Comment `json:"comments"`
	}
	if _, err := s.client.Do(ctx, http.MethodGet, "/comment/"+url.PathEscape(blogID), nil, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to fetch comments"))

		return nil, err
	}

	s.mu.Lock()
	s.comments = out.Comments
	s.mu.Unlock()

	return out.Comments, nil
}

// Create adds a comment to blogID and prepends it locally.
func (s *CommentStore) Create(ctx context.Context, blogID, text string) (*Comment, error) {
	defer s.loading.begin()()

	var out struct {
		Comment *Comment `json:"comment"`
	}
	body := map[string]string{"comment": text}
	if _, err := s.client.Do(ctx, http.MethodPost, "/comment/"+url.PathEscape(blogID), body, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to add comment"))

		return nil, err
	}

	s.mu.Lock()
	s.comments = append([]*Comment{out.Comment}, s.comments...)
	s.mu.Unlock()
	s.notifier.Success("Comment added successfully!")

	return out.Comment, nil
}

// Update edits the text of a comment and replaces it locally.
func (s *CommentStore) Update(ctx context.Context, id, text string) (*Comment, error) {
	defer s.loading.begin()()

	var out struct {
		Comment *Comment `json:"comment"`
	}
	body := map[string]string{"comment": text}
	if _, err := s.client.Do(ctx, http.MethodPut, "/comment/"+url.PathEscape(id), body, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to update comment"))

		return nil, err
	}

	s.mu.Lock()
	for i, comment := range s.comments {
		if comment.ID == id {
			s.comments[i] = out.Comment
		}
	}
	s.mu.Unlock()
	s.notifier.Success("Comment updated successfully!")

	return out.Comment, nil
}

// Delete removes a comment from the server and from local state.
func (s *CommentStore) Delete(ctx context.Context, id string) error {
	defer s.loading.begin()()

	if _, err := s.client.Do(ctx, http.MethodDelete, "/comment/"+url.PathEscape(id), nil, nil); err != nil {
		s.notifier.Error(messageOf(err, "Failed to delete comment"))

		return err
	}

	s.mu.Lock()
	s.comments = slices.DeleteFunc(s.comments, func(comment *Comment) bool { return comment.ID == id })
	s.mu.Unlock()
	s.notifier.Success("Comment deleted successfully!")

	return nil
}
