/*
Package presentation converts domain objects into content store payloads.

A FlowRegistration turns a domain.Flow into the ordered list of pages the engine
publishes: the start page, then the flow page (when the flow has its own content id),
then every node in declaration order. Transaction and Answer build the standalone pages.

Bodies are written in markdown. Each body is sent twice: the raw source and the HTML
rendered with goldmark, so the rendering application can choose.
*/
package presentation
