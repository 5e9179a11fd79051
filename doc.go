/*
Package contentpub publishes structured content items into a remote content store.

Every item goes through the same two-phase protocol: a draft is created with
PUT /v2/content/{id} and, only when the store accepted it, made live with
POST /v2/content/{id}/publish. Required fields are checked before any request
is sent, so a malformed call never reaches the network.

# Content kinds

  - Flows: a start page, an optional flow page and one page per node, published in order.
  - Transactions: a standalone page pointing users to an external service.
  - Answers: a standalone page with a body.

Path reservation and unpublishing are single requests with their own checks.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/contentpub"
		"github.com/aretw0/contentpub/pkg/adapters/publishingapi"
		"github.com/aretw0/contentpub/pkg/domain"
	)

	func main() {
		pub, err := contentpub.New(
			contentpub.WithStore(publishingapi.New("https://publishing-api.example.com")),
		)
		if err != nil {
			log.Fatal(err)
		}

		id, err := pub.PublishAnswer(context.Background(), "/tea-or-coffee", domain.AnswerOptions{
			PublishingApp: "publisher",
			Title:         "Tea or coffee?",
			Content:       "Tea.",
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println("published", id)
	}

# Errors

Validation failures are *domain.ValidationError, domain.ErrContentIDMissing or
domain.ErrDestinationMissing. A draft rejected by the store yields a
*domain.CreationError that matches domain.ErrContentNotCreated. Any other store
error is returned as is.
*/
package contentpub
