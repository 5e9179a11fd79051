/*
Package ports defines the driven ports (interfaces) for the publication engine.

These interfaces decouple the protocol logic from external implementations, allowing
the engine to work with any content store transport, any presenter and any source of
identifiers.

# Key Interfaces

  - ContentStore: The remote store gateway (draft, publish, unpublish, path reservation).
  - FlowPresentation / PagePresenter: Converts domain flows into payloads.
  - IDGenerator: Supplies fresh content identifiers.
  - FlowLoader: Discovers flow definitions (e.g., from Loam).
  - DistributedLocker: Serialises publication of the same flow across processes.
*/
package ports
