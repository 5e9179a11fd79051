package ports

import (
	"context"

	"github.com/aretw0/contentpub/pkg/domain"
)

// ContentStore is the remote content store gateway.
// Implementations only shape requests; they hold no protocol logic.
type ContentStore interface {
	// PutContent creates or updates the draft for id.
	// A response is returned for any status the store answers with; the error is
	// reserved for transport failures.
	PutContent(ctx context.Context, id string, payload domain.Payload) (*domain.Response, error)

	// Publish makes the draft for id live.
	Publish(ctx context.Context, id string) error

	// Unpublish removes the published item id from public view.
	Unpublish(ctx context.Context, id string) error

	// ReservePath claims basePath for publishingApp.
	ReservePath(ctx context.Context, basePath, publishingApp string) error
}
