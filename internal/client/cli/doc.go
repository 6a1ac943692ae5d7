// Package cli provides the interactive moviestream command-line client.
//
// It wires configuration, the credential store, the REST dispatcher, the
// session flows, and an interactive REPL. Typical flow: restore the session
// from stored tokens, then execute user commands; protected views run the
// guard chain before opening and follow its redirects (login prompt or
// profile setup).
//
// Key commands:
//   - login / register / logout / whoami
//   - home, genres, genre <slug>, search <term>
//   - movie <id>, fav <id>, favorites
//   - play <id> (writes a rewritten HLS manifest for an external player)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
