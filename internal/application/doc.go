// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of handlers, routers, the HTTP server, and the
// background heartbeat, making the main package cleaner and more focused on
// CLI parsing and orchestration.
package application
