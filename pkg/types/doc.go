// Package types holds the shared value types and the storage and
// notification ports consumed by the generation engine. Keeping the ports
// here lets pkg/filesystem, pkg/report and pkg/testutil provide
// implementations without import cycles.
package types
