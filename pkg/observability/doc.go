/*
Package observability provides Prometheus metrics for plugin loading and dating sessions.

Metrics live on a dedicated registry so that tests and embedders never collide with the
process-wide default registerer. A nil *Metrics is valid and records nothing.
*/
package observability
