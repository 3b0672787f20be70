// Package document persists the todo Document as a single JSON file.
//
// # Overview
//
// Repository is the whole-document store used by the services package:
// Load reads everything once at startup, Save rewrites everything after each
// mutation, Reset forgets everything. There are no partial updates.
//
// Two implementations are provided:
//
//   - JSONFileRepository: the backing file on disk, replaced atomically
//   - InMemoryRepository: keeps the encoded bytes in memory (tests, -memory)
//
// # Load boundary
//
// Raw bytes are checked against an embedded JSON schema before they are
// decoded, then against the invariants the schema cannot express (unique task
// ids within a list). Any failure is reported as a *CorruptStateError that
// matches common.ErrCorruptState; callers are expected to refuse to start
// rather than overwrite the user's data.
//
// # Concurrency
//
// Single writer. Nothing guards against two processes sharing one file.
package document
