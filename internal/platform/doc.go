// Package platform resolves the OS-specific command that opens a URL in a
// new, independent execution context (a browser tab or window). On Linux
// and the BSDs it uses xdg-open, on macOS open, and on Windows the URL
// protocol handler via rundll32. A user-configured command overrides the
// platform default.
package platform
