/*
Package network builds and queries the multimodal transport network.

The package turns raw station and schedule snapshots into a weighted directed
multigraph (one edge per station pair per line), adjusts edge weights from
per-station congestion forecasts, and answers shortest-route queries with a
line-aware search that charges a time penalty only on genuine line changes.

The two persisted graph artifacts (base and congestion-weighted) are treated
as immutable once built: ApplyCongestion always returns an independent copy,
and FindRoute never mutates the graph it reads. Callers that refresh the
weighted graph must swap a reference to the new copy rather than editing the
graph a concurrent query may be reading.
*/
package network
