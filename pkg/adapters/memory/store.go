package memory

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
)

// ErrDraftNotFound is returned when publishing an id that has no draft.
var ErrDraftNotFound = errors.New("no draft for content id")

// Operation names a ContentStore method, used for failure injection.
type Operation string

const (
	OpPutContent  Operation = "put_content"
	OpPublish     Operation = "publish"
	OpUnpublish   Operation = "unpublish"
	OpReservePath Operation = "reserve_path"
)

// Call is a request the store received, shaped like the HTTP request it stands for.
type Call struct {
	Op            Operation
	Method        string
	Path          string
	ContentID     string
	BasePath      string
	PublishingApp string
}

// Store implements ports.ContentStore in memory.
// It records every call, which makes it the test double of choice and the
// backend of dry runs. Safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	calls        []Call
	drafts       map[string]domain.Payload
	live         map[string]bool
	paths        map[string]string
	createStatus int
	failures     map[Operation]error
}

var _ ports.ContentStore = (*Store)(nil)

// Option configures the Store.
type Option func(*Store)

// WithCreateStatus makes PutContent answer with status. A non-2xx status
// means the draft is not stored.
func WithCreateStatus(status int) Option {
	return func(s *Store) {
		s.createStatus = status
	}
}

// WithFailure makes op return err after recording the call.
func WithFailure(op Operation, err error) Option {
	return func(s *Store) {
		s.failures[op] = err
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		drafts:       make(map[string]domain.Payload),
		live:         make(map[string]bool),
		paths:        make(map[string]string),
		createStatus: http.StatusOK,
		failures:     make(map[Operation]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PutContent stores the draft for id.
func (s *Store) PutContent(ctx context.Context, id string, payload domain.Payload) (*domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(Call{Op: OpPutContent, Method: http.MethodPut, Path: ContentPath(id), ContentID: id, BasePath: payload.BasePath, PublishingApp: payload.PublishingApp})
	if err := s.failures[OpPutContent]; err != nil {
		return nil, err
	}

	resp := &domain.Response{StatusCode: s.createStatus}
	if resp.Success() {
		payload.ContentID = id
		s.drafts[id] = payload
	}
	return resp, nil
}

// Publish marks the draft for id as live.
func (s *Store) Publish(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(Call{Op: OpPublish, Method: http.MethodPost, Path: ContentPath(id) + "/publish", ContentID: id})
	if err := s.failures[OpPublish]; err != nil {
		return err
	}
	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	s.live[id] = true
	return nil
}

// Unpublish withdraws id. Unknown ids are accepted.
func (s *Store) Unpublish(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(Call{Op: OpUnpublish, Method: http.MethodPost, Path: ContentPath(id) + "/unpublish", ContentID: id})
	if err := s.failures[OpUnpublish]; err != nil {
		return err
	}
	delete(s.live, id)
	return nil
}

// ReservePath records the owner of basePath, overriding any previous owner.
func (s *Store) ReservePath(ctx context.Context, basePath, publishingApp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(Call{Op: OpReservePath, Method: http.MethodPut, Path: "/paths/" + basePath, BasePath: basePath, PublishingApp: publishingApp})
	if err := s.failures[OpReservePath]; err != nil {
		return err
	}
	s.paths[basePath] = publishingApp
	return nil
}

func (s *Store) record(c Call) {
	s.calls = append(s.calls, c)
}

// Calls returns a copy of every call received, in order.
func (s *Store) Calls() []Call {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the calls for a single operation, in order.
func (s *Store) CallsTo(op Operation) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Draft returns the stored draft for id.
func (s *Store) Draft(id string) (domain.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.drafts[id]
	return p, ok
}

// IsLive reports whether id is currently published.
func (s *Store) IsLive(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live[id]
}

// Reservation returns the app owning basePath.
func (s *Store) Reservation(basePath string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.paths[basePath]
	return app, ok
}

// ContentPath is the request path of the content item id.
func ContentPath(id string) string {
	return "/v2/content/" + id
}
