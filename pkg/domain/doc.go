/*
Package domain contains the core domain models of the content publisher.

It defines the records that travel between the protocol engine, the presenters and the
remote content store. This package is kept pure and free of external dependencies
like I/O or transport, following Hexagonal Architecture principles.

# Key Entities

  - Payload: The content item sent to the store in a draft "put content" call.
  - Response: The status of a draft call, used to decide whether publishing may proceed.
  - Flow: A named sequence of pages (start page, flow page and nodes) published as one unit.
  - LifecycleHooks: Callbacks fired as content moves from draft to live.
*/
package domain
