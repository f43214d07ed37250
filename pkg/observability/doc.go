/*
Package observability provides tools for monitoring Filler games.

It includes lifecycle hooks that audit every move through slog, Prometheus
metrics fed by the same hooks, and a small HTTP server exposing them.
*/
package observability
