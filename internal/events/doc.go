// Package events provides types and interfaces for event-driven
// notifications between components.
//
// Emitters publish events without knowing which handlers will process
// them, which keeps side effects such as sending the welcome email out
// of the request handlers themselves.
package events
