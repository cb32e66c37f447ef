// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services hold no I/O of their own: files, databases and AI
// providers are reached exclusively through the driven ports.
package services
