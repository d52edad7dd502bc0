// Package dashboard is the studio-facing side of the utilities collection:
// the StudioUtilities entry point the host mounts, the Component that
// renders categories, the filtered tool grid and quick actions, the
// interactive browser, and the composed export namespace.
package dashboard
