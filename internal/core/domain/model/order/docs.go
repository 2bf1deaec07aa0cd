// Package order contains the Order aggregate and its state machine.
//
// The Order aggregate is the central entity of the marketplace: one record per
// order, moved through a fixed sequence of statuses by three different actors
// (customer, restaurant, courier). The Decide function is the single source of
// truth for which transitions are legal and which role may perform each one;
// the lifecycle and delivery services never encode transition rules themselves.
//
// All cross-replica races (two couriers claiming the same order, a
// cancellation racing a confirmation) are resolved by the repository's
// compare-and-swap on status, not by anything in this package: the domain
// model decides what is legal, the store decides who wins.
package order
