// Package history persists conversation transcripts for the chat demo.
//
// A transcript is an ordered sequence of role-tagged messages grouped by
// thread ID. Three Store backends are provided: in-memory (the default),
// SQLite for a local single-file database, and Postgres for a shared one.
//
//	store, err := history.NewSqliteStore(history.SqliteOptions{Path: "chat.db"})
//	if err != nil { ... }
//	defer store.Close()
//
//	threadID := history.NewThreadID()
//	err = store.Append(ctx, threadID,
//		history.Message{Role: "user", Content: "Hello"},
//		history.Message{Role: "assistant", Content: "Hi!"},
//	)
package history
