package presentation

import (
	"github.com/aretw0/contentpub/pkg/domain"
)

// Transaction is a standalone page pointing users to an external service.
type Transaction struct {
	basePath string
	in       domain.TransactionOptions
	opts     Options
}

// NewTransaction creates a transaction presenter. The publishing app comes from in.
func NewTransaction(basePath string, in domain.TransactionOptions, opts Options) *Transaction {
	return &Transaction{basePath: basePath, in: in, opts: opts.WithDefaults()}
}

// ContentID is always empty: standalone pages get a fresh identifier.
func (t *Transaction) ContentID() string { return "" }

func (t *Transaction) Payload() (domain.Payload, error) {
	intro, err := bodyParts(t.in.Content)
	if err != nil {
		return domain.Payload{}, err
	}
	return domain.Payload{
		BasePath:      t.basePath,
		Title:         t.in.Title,
		SchemaName:    domain.SchemaTransaction,
		DocumentType:  domain.SchemaTransaction,
		PublishingApp: t.in.PublishingApp,
		RenderingApp:  t.opts.RenderingApp,
		Locale:        t.opts.Locale,
		UpdateType:    t.opts.UpdateType,
		Routes:        []domain.Route{{Path: t.basePath, Type: domain.RouteExact}},
		Details: domain.Details{
			IntroductoryParagraph: intro,
			TransactionStartLink:  t.in.Link,
		},
		Kind: domain.KindTransaction,
	}, nil
}

// Answer is a standalone page with a body and no onward link.
type Answer struct {
	basePath string
	in       domain.AnswerOptions
	opts     Options
}

// NewAnswer creates an answer presenter. The publishing app comes from in.
func NewAnswer(basePath string, in domain.AnswerOptions, opts Options) *Answer {
	return &Answer{basePath: basePath, in: in, opts: opts.WithDefaults()}
}

func (a *Answer) ContentID() string { return "" }

func (a *Answer) Payload() (domain.Payload, error) {
	body, err := bodyParts(a.in.Content)
	if err != nil {
		return domain.Payload{}, err
	}
	return domain.Payload{
		BasePath:      a.basePath,
		Title:         a.in.Title,
		SchemaName:    domain.SchemaAnswer,
		DocumentType:  domain.SchemaAnswer,
		PublishingApp: a.in.PublishingApp,
		RenderingApp:  a.opts.RenderingApp,
		Locale:        a.opts.Locale,
		UpdateType:    a.opts.UpdateType,
		Routes:        []domain.Route{{Path: a.basePath, Type: domain.RouteExact}},
		Details:       domain.Details{Body: body},
		Kind:          domain.KindAnswer,
	}, nil
}
