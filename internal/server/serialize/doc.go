// Package serialize builds the JSON payloads returned by the birdlog API.
//
// Payloads are produced by pure functions that take a model and a
// FieldPolicy and return an ordered Payload value. The policy narrows the
// payload to an allow-list (Include) or strips a deny-list (Exclude) of
// field names; names that do not exist on the record are ignored in both
// modes. Field order is canonical and stable regardless of the policy.
//
// Functions in this package never touch the database and never mutate
// their inputs. All needed data is passed in by the caller.
package serialize
