package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/raine/telegram-compliment-bot/internal/storage"
)

// listUsers writes one line per user with stored data: the ID, the keys
// they have and when any of them last changed.
func listUsers(w io.Writer, store storage.Store) error {
	ids, err := store.GetUsers()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "No users yet.")
		return nil
	}

	for _, id := range ids {
		items, err := store.GetItems(id)
		if err != nil {
			return err
		}
		keys := lo.Map(items, func(it storage.Item, _ int) string { return it.Key })
		latest := lo.MaxBy(items, func(a, b storage.Item) bool { return a.UpdatedAt.After(b.UpdatedAt) })
		fmt.Fprintf(w, "%d\t%s\t%s\n", id, strings.Join(keys, ","), latest.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
