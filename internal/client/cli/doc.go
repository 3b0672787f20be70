// Package cli provides the interactive todo command-line client.
//
// It wires configuration, the document store and the domain services into a
// read-eval-print loop. The CLI holds the logged-in username and the task
// filter; everything else lives in the services.State it drives.
//
// Key features:
//   - Register / Login / Logout
//   - Create, select and delete lists
//   - Add, toggle and delete tasks; clear completed or all tasks
//   - Filter tasks by state and priority
//   - Completion statistics with a priority bar chart
//   - Delete your own account, or reset all data when started with -allow-reset
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
