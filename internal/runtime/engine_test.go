package runtime_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aretw0/contentpub/internal/runtime"
	"github.com/aretw0/contentpub/pkg/adapters/memory"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/identity"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/aretw0/contentpub/pkg/presentation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerOptions() domain.AnswerOptions {
	return domain.AnswerOptions{PublishingApp: "publisher", Title: "Sample answer title", Content: "Sample answer content"}
}

func transactionOptions() domain.TransactionOptions {
	return domain.TransactionOptions{
		PublishingApp: "publisher",
		Title:         "Sample transaction title",
		Content:       "Sample transaction content",
		Link:          "https://www.gov.uk",
	}
}

func paths(calls []memory.Call) []string {
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Method+" "+c.Path)
	}
	return out
}

func TestEngine_PublishAnswer(t *testing.T) {
	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.Fixed("content-id"))

	id, err := engine.PublishAnswer(context.Background(), "/base-path", answerOptions())
	require.NoError(t, err)
	assert.Equal(t, "content-id", id)

	assert.Equal(t, []string{
		"PUT /v2/content/content-id",
		"POST /v2/content/content-id/publish",
	}, paths(store.Calls()))

	draft, ok := store.Draft("content-id")
	require.True(t, ok)
	assert.Equal(t, "content-id", draft.ContentID)
	assert.Equal(t, "/base-path", draft.BasePath)
	assert.Equal(t, "publisher", draft.PublishingApp)
	assert.Equal(t, domain.SchemaAnswer, draft.SchemaName)
	assert.Empty(t, draft.Details.TransactionStartLink)
	assert.True(t, store.IsLive("content-id"))
}

func TestEngine_PublishTransaction(t *testing.T) {
	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.Fixed("content-id"))

	_, err := engine.PublishTransaction(context.Background(), "/base-path", transactionOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PUT /v2/content/content-id",
		"POST /v2/content/content-id/publish",
	}, paths(store.Calls()))

	draft, _ := store.Draft("content-id")
	assert.Equal(t, domain.SchemaTransaction, draft.SchemaName)
	assert.Equal(t, "https://www.gov.uk", draft.Details.TransactionStartLink)
}

func TestEngine_CreateFailureShortCircuits(t *testing.T) {
	ctx := context.Background()

	t.Run("Answer", func(t *testing.T) {
		store := memory.NewStore(memory.WithCreateStatus(http.StatusInternalServerError))
		engine := runtime.NewEngine(store, identity.Fixed("content-id"))

		id, err := engine.PublishAnswer(ctx, "/base-path", answerOptions())
		require.Error(t, err)
		assert.Empty(t, id)
		assert.EqualError(t, err, "This content item has not been created")
		assert.ErrorIs(t, err, domain.ErrContentNotCreated)

		var creation *domain.CreationError
		require.ErrorAs(t, err, &creation)
		assert.Equal(t, http.StatusInternalServerError, creation.StatusCode)
		assert.Equal(t, "content-id", creation.ContentID)

		assert.Equal(t, []string{"PUT /v2/content/content-id"}, paths(store.Calls()))
	})

	t.Run("Transaction", func(t *testing.T) {
		store := memory.NewStore(memory.WithCreateStatus(http.StatusUnprocessableEntity))
		engine := runtime.NewEngine(store, identity.Fixed("content-id"))

		_, err := engine.PublishTransaction(ctx, "/base-path", transactionOptions())
		assert.ErrorIs(t, err, domain.ErrContentNotCreated)
		assert.Empty(t, store.CallsTo(memory.OpPublish))
	})

	t.Run("BatchPage", func(t *testing.T) {
		store := memory.NewStore(memory.WithCreateStatus(http.StatusBadGateway))
		engine := runtime.NewEngine(store, identity.Fixed("content-id"))

		flow := domain.Flow{Name: "bridge-of-death", Title: "Bridge of death", StartPageContentID: "start-id"}
		err := engine.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})})
		assert.ErrorIs(t, err, domain.ErrContentNotCreated)
		assert.Empty(t, store.CallsTo(memory.OpPublish))
	})
}

func TestEngine_TransportErrorsAreReturnedUnchanged(t *testing.T) {
	boom := errors.New("connection reset by peer")
	ctx := context.Background()

	cases := []struct {
		name string
		op   memory.Operation
		call func(*runtime.Engine) error
	}{
		{"Draft", memory.OpPutContent, func(e *runtime.Engine) error {
			_, err := e.PublishAnswer(ctx, "/base-path", answerOptions())
			return err
		}},
		{"Publish", memory.OpPublish, func(e *runtime.Engine) error {
			_, err := e.PublishAnswer(ctx, "/base-path", answerOptions())
			return err
		}},
		{"Unpublish", memory.OpUnpublish, func(e *runtime.Engine) error {
			return e.Unpublish(ctx, "content-id")
		}},
		{"ReservePath", memory.OpReservePath, func(e *runtime.Engine) error {
			return e.ReservePathForPublishingApp(ctx, "/base_path", "publisher")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore(memory.WithFailure(tc.op, boom))
			engine := runtime.NewEngine(store, identity.Fixed("content-id"))

			err := tc.call(engine)
			assert.Same(t, boom, err)
		})
	}
}

func TestEngine_ValidationIssuesNoCalls(t *testing.T) {
	ctx := context.Background()

	withAnswer := func(mut func(*domain.AnswerOptions)) domain.AnswerOptions {
		o := answerOptions()
		mut(&o)
		return o
	}
	withTransaction := func(mut func(*domain.TransactionOptions)) domain.TransactionOptions {
		o := transactionOptions()
		mut(&o)
		return o
	}

	cases := []struct {
		name    string
		call    func(*runtime.Engine) error
		message string
	}{
		{"Unpublish/Empty", func(e *runtime.Engine) error { return e.Unpublish(ctx, "") }, "Content id has not been supplied"},
		{"Unpublish/Blank", func(e *runtime.Engine) error { return e.Unpublish(ctx, "   ") }, "Content id has not been supplied"},
		{"ReservePath/NoPath", func(e *runtime.Engine) error {
			return e.ReservePathForPublishingApp(ctx, "", "publisher")
		}, "The destination or path isn't supplied"},
		{"ReservePath/NoApp", func(e *runtime.Engine) error {
			return e.ReservePathForPublishingApp(ctx, "/base_path", "")
		}, "The destination or path isn't supplied"},
		{"Answer/BasePath", func(e *runtime.Engine) error {
			_, err := e.PublishAnswer(ctx, "", answerOptions())
			return err
		}, "The base path isn't supplied"},
		{"Answer/PublishingApp", func(e *runtime.Engine) error {
			_, err := e.PublishAnswer(ctx, "/base-path", withAnswer(func(o *domain.AnswerOptions) { o.PublishingApp = "" }))
			return err
		}, "The publishing_app isn't supplied"},
		{"Answer/Title", func(e *runtime.Engine) error {
			_, err := e.PublishAnswer(ctx, "/base-path", withAnswer(func(o *domain.AnswerOptions) { o.Title = "" }))
			return err
		}, "The title isn't supplied"},
		{"Answer/Content", func(e *runtime.Engine) error {
			_, err := e.PublishAnswer(ctx, "/base-path", withAnswer(func(o *domain.AnswerOptions) { o.Content = "" }))
			return err
		}, "The content isn't supplied"},
		{"Transaction/Link", func(e *runtime.Engine) error {
			_, err := e.PublishTransaction(ctx, "/base-path", withTransaction(func(o *domain.TransactionOptions) { o.Link = "" }))
			return err
		}, "The link isn't supplied"},
		{"Transaction/FirstViolationWins", func(e *runtime.Engine) error {
			_, err := e.PublishTransaction(ctx, "/base-path", domain.TransactionOptions{PublishingApp: "publisher"})
			return err
		}, "The title isn't supplied"},
		{"Batch/PageTitle", func(e *runtime.Engine) error {
			flow := domain.Flow{Name: "untitled"}
			return e.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})})
		}, "The title isn't supplied"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore()
			engine := runtime.NewEngine(store, identity.Fixed("content-id"))

			err := tc.call(engine)
			assert.EqualError(t, err, tc.message)
			assert.Empty(t, store.Calls())
		})
	}
}

func TestEngine_Unpublish(t *testing.T) {
	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.Fixed("unused"))

	require.NoError(t, engine.Unpublish(context.Background(), "content-id"))
	assert.Equal(t, []string{"POST /v2/content/content-id/unpublish"}, paths(store.Calls()))
}

func TestEngine_ReservePath(t *testing.T) {
	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.Fixed("unused"))
	ctx := context.Background()

	require.NoError(t, engine.ReservePathForPublishingApp(ctx, "/base_path", "publisher"))
	require.NoError(t, engine.ReservePathForPublishingApp(ctx, "/base_path", "publisher"))

	calls := store.Calls()
	assert.Equal(t, []string{"PUT /paths//base_path", "PUT /paths//base_path"}, paths(calls))
	assert.Equal(t, "publisher", calls[0].PublishingApp)
}

func TestEngine_GeneratedIdentifiersAreFreshUUIDs(t *testing.T) {
	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.NewUUID())
	ctx := context.Background()

	first, err := engine.PublishAnswer(ctx, "/one", answerOptions())
	require.NoError(t, err)
	second, err := engine.PublishTransaction(ctx, "/two", transactionOptions())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, id := range []string{first, second} {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	}
	assert.Equal(t, "PUT "+memory.ContentPath(first), paths(store.Calls())[0])
}

func TestEngine_PublishBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("StartPageOnly", func(t *testing.T) {
		store := memory.NewStore()
		engine := runtime.NewEngine(store, identity.Fixed("generated"))

		flow := domain.Flow{Name: "bridge-of-death", Title: "Bridge of death", StartPageContentID: "start-id"}
		require.NoError(t, engine.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})}))

		assert.Equal(t, []string{
			"PUT /v2/content/start-id",
			"POST /v2/content/start-id/publish",
		}, paths(store.Calls()))
	})

	t.Run("StartPageAndNodes", func(t *testing.T) {
		store := memory.NewStore()
		engine := runtime.NewEngine(store, identity.NewSequence("generated-1"))

		flow := domain.Flow{
			Name:               "bridge-of-death",
			Title:              "Bridge of death",
			StartPageContentID: "start-id",
			Nodes: []domain.FlowNode{
				{ContentID: "name-id", Slug: "what-is-your-name", Title: "What is your name?"},
				{Slug: "what-is-your-quest", Title: "What is your quest?"},
				{ContentID: "colour-id", Slug: "what-is-your-favourite-colour", Title: "What is your favourite colour?"},
			},
		}
		require.NoError(t, engine.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})}))

		assert.Equal(t, []string{
			"PUT /v2/content/start-id",
			"POST /v2/content/start-id/publish",
			"PUT /v2/content/name-id",
			"POST /v2/content/name-id/publish",
			"PUT /v2/content/generated-1",
			"POST /v2/content/generated-1/publish",
			"PUT /v2/content/colour-id",
			"POST /v2/content/colour-id/publish",
		}, paths(store.Calls()))

		quest, ok := store.Draft("generated-1")
		require.True(t, ok)
		assert.Equal(t, "/bridge-of-death/what-is-your-quest", quest.BasePath)
	})

	t.Run("FlowPage", func(t *testing.T) {
		store := memory.NewStore()
		engine := runtime.NewEngine(store, identity.Fixed("generated"))

		flow := domain.Flow{Name: "bridge-of-death", Title: "Bridge of death", StartPageContentID: "start-id", FlowContentID: "flow-id"}
		require.NoError(t, engine.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})}))

		assert.Equal(t, []string{
			"PUT /v2/content/start-id",
			"POST /v2/content/start-id/publish",
			"PUT /v2/content/flow-id",
			"POST /v2/content/flow-id/publish",
		}, paths(store.Calls()))
	})

	t.Run("AbortsOnFirstError", func(t *testing.T) {
		store := memory.NewStore()
		engine := runtime.NewEngine(store, identity.Fixed("generated"))

		good := domain.Flow{Name: "first", Title: "First", StartPageContentID: "first-id"}
		broken := domain.Flow{
			Name:               "second",
			Title:              "Second",
			StartPageContentID: "second-id",
			Nodes:              []domain.FlowNode{{ContentID: "orphan-id", Title: "No slug"}},
		}
		never := domain.Flow{Name: "third", Title: "Third", StartPageContentID: "third-id"}

		batch := []ports.FlowPresentation{
			presentation.NewFlowRegistration(good, presentation.Options{}),
			presentation.NewFlowRegistration(broken, presentation.Options{}),
			presentation.NewFlowRegistration(never, presentation.Options{}),
		}
		err := engine.Publish(ctx, batch)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no slug")

		assert.Equal(t, []string{
			"PUT /v2/content/first-id",
			"POST /v2/content/first-id/publish",
			"PUT /v2/content/second-id",
			"POST /v2/content/second-id/publish",
		}, paths(store.Calls()))
		assert.True(t, store.IsLive("first-id"), "no rollback of published items")
	})

	t.Run("RejectsNilElement", func(t *testing.T) {
		store := memory.NewStore()
		engine := runtime.NewEngine(store, identity.Fixed("generated"))

		good := domain.Flow{Name: "first", Title: "First", StartPageContentID: "first-id"}
		var missing *presentation.FlowRegistration
		for _, batch := range [][]ports.FlowPresentation{
			{presentation.NewFlowRegistration(good, presentation.Options{}), nil},
			{presentation.NewFlowRegistration(good, presentation.Options{}), missing},
		} {
			err := engine.Publish(ctx, batch)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "batch element 1 is nil")
		}
		assert.Empty(t, store.Calls())
	})

	t.Run("RejectsUnnamedFlow", func(t *testing.T) {
		store := memory.NewStore()
		engine := runtime.NewEngine(store, identity.Fixed("generated"))

		good := domain.Flow{Name: "first", Title: "First", StartPageContentID: "first-id"}
		unnamed := domain.Flow{Name: "  ", Title: "Unnamed", StartPageContentID: "unnamed-id"}
		err := engine.Publish(ctx, []ports.FlowPresentation{
			presentation.NewFlowRegistration(good, presentation.Options{}),
			presentation.NewFlowRegistration(unnamed, presentation.Options{}),
		})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The flow name isn't supplied", err.Error())
		assert.Empty(t, store.Calls())
	})

	t.Run("Deterministic", func(t *testing.T) {
		flow := domain.Flow{
			Name: "marriage-abroad", Title: "Marriage abroad", StartPageContentID: "start-id", FlowContentID: "flow-id",
			Nodes: []domain.FlowNode{{ContentID: "a", Slug: "a", Title: "A"}, {ContentID: "b", Slug: "b", Title: "B"}},
		}
		run := func() []string {
			store := memory.NewStore()
			engine := runtime.NewEngine(store, identity.NewUUID())
			require.NoError(t, engine.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})}))
			return paths(store.Calls())
		}
		assert.Equal(t, run(), run())
	})
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var events []domain.EventType
	record := func(ctx context.Context, e *domain.ContentEvent) {
		events = append(events, e.Type)
	}
	hooks := domain.LifecycleHooks{
		OnDraftCreated:  record,
		OnDraftRejected: record,
		OnPublished:     record,
		OnUnpublished:   record,
		OnPathReserved:  record,
	}
	ctx := context.Background()

	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.Fixed("content-id"), runtime.WithLifecycleHooks(hooks))

	_, err := engine.PublishAnswer(ctx, "/base-path", answerOptions())
	require.NoError(t, err)
	require.NoError(t, engine.Unpublish(ctx, "content-id"))
	require.NoError(t, engine.ReservePathForPublishingApp(ctx, "/base-path", "publisher"))

	assert.Equal(t, []domain.EventType{
		domain.EventDraftCreated,
		domain.EventPublished,
		domain.EventUnpublished,
		domain.EventPathReserved,
	}, events)

	events = nil
	rejecting := runtime.NewEngine(memory.NewStore(memory.WithCreateStatus(http.StatusInternalServerError)),
		identity.Fixed("content-id"), runtime.WithLifecycleHooks(hooks))
	_, _ = rejecting.PublishAnswer(ctx, "/base-path", answerOptions())
	assert.Equal(t, []domain.EventType{domain.EventDraftRejected}, events)
}

func TestEngine_PageOptions(t *testing.T) {
	store := memory.NewStore()
	engine := runtime.NewEngine(store, identity.Fixed("content-id"),
		runtime.WithPageOptions(presentation.Options{Locale: "cy"}))

	_, err := engine.PublishAnswer(context.Background(), "/base-path", answerOptions())
	require.NoError(t, err)

	draft, _ := store.Draft("content-id")
	assert.Equal(t, "cy", draft.Locale)
	assert.Equal(t, presentation.DefaultRenderingApp, draft.RenderingApp)
	assert.Equal(t, "publisher", draft.PublishingApp, "standalone pages keep the caller's app")
}

type failingIDs struct{ err error }

func (f failingIDs) NewID() (string, error) { return "", f.err }

func TestEngine_IDGeneratorFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("entropy exhausted")
	store := memory.NewStore()
	engine := runtime.NewEngine(store, failingIDs{err: boom})

	_, err := engine.PublishAnswer(ctx, "/answer", answerOptions())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "failed to generate content id: entropy exhausted", err.Error())

	flow := domain.Flow{Name: "quest", Title: "Quest", StartPageContentID: "start-id", Nodes: []domain.FlowNode{{Slug: "name", Title: "Name"}}}
	err = engine.Publish(ctx, []ports.FlowPresentation{presentation.NewFlowRegistration(flow, presentation.Options{})})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "failed to generate content id: entropy exhausted", err.Error())

	assert.Equal(t, []string{
		"PUT /v2/content/start-id",
		"POST /v2/content/start-id/publish",
	}, paths(store.Calls()))
}
