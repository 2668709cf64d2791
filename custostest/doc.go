// Package custostest provides mocks and fixtures for testing components
// built around the custody engine: a configurable Authenticator, a recording
// token mover and deterministic address generation.
package custostest
