// Package infra contains technical adapters such as the HTTP client,
// metrics exporters and grid renderers. These packages should depend
// only on the interfaces defined in the core packages.
package infra
