package tests

import (
	"context"
	"testing"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ContentStoreContractTest verifies that an accepting store (one that does not
// inject failures) goes through the full draft -> live -> withdrawn lifecycle.
func ContentStoreContractTest(t *testing.T, store ports.ContentStore) {
	t.Helper()
	ctx := context.Background()

	payload := domain.Payload{
		ContentID:     "contract-id",
		BasePath:      "/contract",
		Title:         "Contract",
		SchemaName:    domain.SchemaAnswer,
		DocumentType:  domain.SchemaAnswer,
		PublishingApp: "publisher",
		Locale:        "en",
		Routes:        []domain.Route{{Path: "/contract", Type: domain.RouteExact}},
	}

	t.Run("PutContent_Success", func(t *testing.T) {
		resp, err := store.PutContent(ctx, payload.ContentID, payload)
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.True(t, resp.Success(), "expected 2xx, got %d", resp.StatusCode)
	})

	t.Run("Publish_AfterDraft", func(t *testing.T) {
		require.NoError(t, store.Publish(ctx, payload.ContentID))
	})

	t.Run("Unpublish_AfterPublish", func(t *testing.T) {
		require.NoError(t, store.Unpublish(ctx, payload.ContentID))
	})

	t.Run("ReservePath", func(t *testing.T) {
		require.NoError(t, store.ReservePath(ctx, "/contract", "publisher"))
	})

	t.Run("ReservePath_Idempotent", func(t *testing.T) {
		require.NoError(t, store.ReservePath(ctx, "/contract", "publisher"))
	})
}

// FlowLoaderContractTest verifies that a loader exposes the expected flows.
func FlowLoaderContractTest(t *testing.T, loader ports.FlowLoader, expected map[string]domain.Flow) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetFlow_Success", func(t *testing.T) {
		for name, want := range expected {
			got, err := loader.GetFlow(ctx, name)
			require.NoError(t, err, "flow %s", name)
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.StartPageContentID, got.StartPageContentID)
			assert.Equal(t, want.FlowContentID, got.FlowContentID)
			assert.Len(t, got.Nodes, len(want.Nodes))
			if want.Body != "" {
				assert.Equal(t, want.Body, got.Body)
			}
		}
	})

	t.Run("GetFlow_NotFound", func(t *testing.T) {
		_, err := loader.GetFlow(ctx, "non-existent-flow")
		assert.Error(t, err)
	})

	t.Run("ListFlows", func(t *testing.T) {
		names, err := loader.ListFlows(ctx)
		require.NoError(t, err)
		assert.Len(t, names, len(expected))
		assert.IsNonDecreasing(t, names)
		for name := range expected {
			assert.Contains(t, names, name)
		}
	})
}
