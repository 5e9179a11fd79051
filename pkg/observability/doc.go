/*
Package observability binds the publisher lifecycle hooks to metrics and logs.

Metrics counts every remote call the engine completes. LoggingHooks writes one
structured record per event; Combine fans a single event out to several hook sets.
*/
package observability
