// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates are composed of: identifiers
// and monetary amounts. All kernel types are immutable value objects that can
// only be created through validating constructor functions.
package kernel
