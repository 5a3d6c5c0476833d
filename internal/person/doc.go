// Package person defines the Person record and the stores that persist it.
//
// MongoStore works on a *mongo.Collection from the official v2 driver.
// MemoryStore offers the same semantics in memory for tests and offline runs.
// Both return ErrNotFound when a single-result operation matches nothing, so
// callers branch on an explicit absent result rather than a nil dereference.
//
// Queries are typed: Filter (exact name, favorite-food membership), Update
// (partial $set) and Query (filter, sort, limit, excluded fields). Each
// renders itself to BSON for the driver and evaluates itself in memory for
// MemoryStore.
package person
