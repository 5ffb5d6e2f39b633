package client

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
)

// BlogStore keeps a local list of blogs and the blog being viewed in sync with the server.
type BlogStore struct {
	client   *Client
	notifier Notifier
	loading  inflight

	mu      sync.RWMutex
	blogs   []*Blog
	current *Blog
	query   string
	tag     string
}

// NewBlogStore creates an empty store.
func NewBlogStore(client *Client, notifier Notifier) *BlogStore {
	return &BlogStore{client: client, notifier: notifierOrNop(notifier)}
}

// Blogs returns a copy of the loaded list, newest first.
func (s *BlogStore) Blogs() []*Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.blogs)
}

// Current returns the blog last loaded with Load, or nil.
func (s *BlogStore) Current() *Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Loading reports whether a blog call is in flight.
func (s *BlogStore) Loading() bool {
	return s.loading.active()
}

// SetSearchQuery sets the free-text filter used by Filtered.
func (s *BlogStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
}

// SetFilterTag sets the tag filter used by Filtered.
func (s *BlogStore) SetFilterTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tag = tag
}

// Filtered applies the search query and tag filter to the loaded list.
// The query matches title, content or the author's name case-insensitively;
// the tag must equal one of the blog's tags ignoring case.
func (s *BlogStore) Filtered() []*Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(s.query)
	filtered := make([]*Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		if query != "" && !matchesQuery(blog, query) {
			continue
		}
		if s.tag != "" && !slices.ContainsFunc(blog.Tags, func(tag string) bool {
			return strings.EqualFold(tag, s.tag)
		}) {
			continue
		}
		filtered = append(filtered, blog)
	}

	return filtered
}

func matchesQuery(blog *Blog, query string) bool {
	if strings.Contains(strings.ToLower(blog.Title), query) ||
		strings.Contains(strings.ToLower(blog.Content), query) {
		return true
	}
	if blog.Author == nil {
		return false
	}

	// First non-empty of username, full name, email
	name := blog.Author.Username
	if name == "" {
		name = blog.Author.FullName
	}
	if name == "" {
		name = blog.Author.Email
	}

	return name != "" && strings.Contains(strings.ToLower(name), query)
}

// IsOwner reports whether user wrote blog.
func IsOwner(user *User, blog *Blog) bool {
	return user != nil && blog != nil && blog.Author != nil && user.ID == blog.Author.ID
}

// LoadAll replaces the local list with the server's.
func (s *BlogStore) LoadAll(ctx context.Context) ([]*Blog, error) {
	defer s.loading.begin()()

	var out struct {
		Blogs []*Blog `json:"blogs"`
	}
	if _, err := s.client.Do(ctx, http.MethodGet, "/blog", nil, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to fetch blogs"))

		return nil, err
	}

	s.mu.Lock()
	s.blogs = out.Blogs
	s.mu.Unlock()

	return out.Blogs, nil
}

// Load fetches one blog and makes it current.
func (s *BlogStore) Load(ctx context.Context, id string) (*Blog, error) {
	defer s.loading.begin()()

	var out struct {
		Blog *Blog `json:"blog"`
	}
	if _, err := s.client.Do(ctx, http.MethodGet, "/blog/"+url.PathEscape(id), nil, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to fetch blog"))

		return nil, err
	}

	s.mu.Lock()
	s.current = out.Blog
	s.mu.Unlock()

	return out.Blog, nil
}

// Create publishes a blog and prepends it to the local list.
func (s *BlogStore) Create(ctx context.Context, input BlogInput) (*Blog, error) {
	defer s.loading.begin()()

	var out struct {
		Blog *Blog `json:"blog"`
	}
	if _, err := s.client.Do(ctx, http.MethodPost, "/blog/create", input, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to create blog"))

		return nil, err
	}

	s.mu.Lock()
	s.blogs = append([]*Blog{out.Blog}, s.blogs...)
	s.mu.Unlock()
	s.notifier.Success("Blog created successfully!")

	return out.Blog, nil
}

// Update edits a blog and replaces it in the local list and as current.
func (s *BlogStore) Update(ctx context.Context, id string, input BlogInput) (*Blog, error) {
	defer s.loading.begin()()

	var out struct {
		Blog *Blog `json:"blog"`
	}
	if _, err := s.client.Do(ctx, http.MethodPut, "/blog/"+url.PathEscape(id), input, &out); err != nil {
		s.notifier.Error(messageOf(err, "Failed to update blog"))

		return nil, err
	}

	s.mu.Lock()
	for i, blog := range s.blogs {
		if blog.ID == id {
			s.blogs[i] = out.Blog
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = out.Blog
	}
	s.mu.Unlock()
	s.notifier.Success("Blog updated successfully!")

	return out.Blog, nil
}

// Delete removes a blog from the server and from local state.
func (s *BlogStore) Delete(ctx context.Context, id string) error {
	defer s.loading.begin()()

	if _, err := s.client.Do(ctx, http.MethodDelete, "/blog/"+url.PathEscape(id), nil, nil); err != nil {
		s.notifier.Error(messageOf(err, "Failed to delete blog"))

		return err
	}

	s.mu.Lock()
	s.blogs = slices.DeleteFunc(s.blogs, func(blog *Blog) bool { return blog.ID == id })
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()
	s.notifier.Success("Blog deleted successfully!")

	return nil
}
