// Package estimate computes move totals, box counts and cost ranges from a
// funnel snapshot.
//
// Two cost strategies exist and are selected explicitly by Phase. The preset
// strategy prices a move from its home-size band before any inventory is
// known. The granular strategy prices it from rooms, furniture weight, route
// distance and add-ons once inventory has been collected. They intentionally
// disagree; PhaseForStep picks the one a given funnel step shows.
//
// All functions are pure and safe for concurrent use. Nothing here mutates
// its input.
package estimate
