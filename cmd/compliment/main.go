// Command compliment reads and edits a user's compliments straight from the
// bot's database, without going through Telegram.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raine/telegram-compliment-bot/config"
	"github.com/raine/telegram-compliment-bot/internal/compliments"
	"github.com/raine/telegram-compliment-bot/internal/storage"
	"github.com/raine/telegram-compliment-bot/internal/theme"
)

func main() {
	var userID int64
	var category, add, themeArg string
	var list, reset, users bool

	flag.Int64Var(&userID, "user", 0, "Telegram user ID whose compliments to use (0 = local profile)")
	flag.StringVar(&category, "category", compliments.AllCategories, "Category to pick from, or \"all\"")
	flag.StringVar(&add, "add", "", `Add a compliment: "category|text"`)
	flag.BoolVar(&list, "list", false, "List categories with their compliment counts")
	flag.StringVar(&themeArg, "theme", "", "Set the theme: light, dark or toggle")
	flag.BoolVar(&reset, "reset", false, "Remove added compliments and go back to the starter set")
	flag.BoolVar(&users, "users", false, "List users with stored data and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load env file from user config directory (same as main bot)
	config.LoadEnvFile()
	dbPath := config.DBPathFromEnv()

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database at %s: %v\n", dbPath, err)
		os.Exit(1)
	}
	defer store.Close()

	if users {
		if err := listUsers(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing users: %v\n", err)
			os.Exit(1)
		}
		return
	}

	kv := storage.ForUser(store, userID)

	current, err := theme.Load(kv, lipgloss.HasDarkBackground())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load theme")
	}
	if themeArg != "" {
		next, ok := theme.Parse(themeArg)
		if themeArg == "toggle" {
			next, ok = current.Toggle(), true
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown theme %q (use light, dark or toggle)\n", themeArg)
			os.Exit(2)
		}
		if err := theme.Save(kv, next); err != nil {
			log.Warn().Err(err).Msg("theme not persisted")
		}
		current = next
	}
	styles := newStyles(current)

	if reset {
		if err := compliments.Reset(kv); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting compliments: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(styles.status.Render("Back to the starter compliments."))
	}

	set, err := compliments.Load(kv)
	if err != nil {
		log.Warn().Err(err).Msg("using default compliments")
	}

	if add != "" {
		rawCategory, text, _ := strings.Cut(add, "|")
		next, name, err := set.AddEntry(rawCategory, text)
		switch {
		case errors.Is(err, compliments.ErrEmptyCategory):
			fmt.Println(styles.status.Render("Enter a category name."))
			os.Exit(2)
		case errors.Is(err, compliments.ErrEmptyText):
			fmt.Println(styles.status.Render("Write a compliment to add."))
			os.Exit(2)
		}
		set = next
		if err := compliments.Save(kv, set); err != nil {
			log.Warn().Err(err).Msg("compliments not persisted")
		}
		fmt.Println(styles.status.Render("Added!"))
		category = name
	}

	if list {
		for _, c := range set.Categories() {
			fmt.Printf("%s %s\n", styles.label.Render(compliments.CategoryLabel(c)), styles.muted.Render(fmt.Sprintf("(%d)", set.Count(c))))
		}
		return
	}

	if category != compliments.AllCategories {
		category = compliments.NormalizeCategory(category)
	}
	entry, ok := set.RandomEntry(category, compliments.DefaultRand)
	if !ok {
		fmt.Println(styles.muted.Render("No compliments yet."))
		return
	}
	fmt.Println(styles.compliment.Render(entry + " " + compliments.CategoryEmoji(category)))
}

type styles struct {
	compliment lipgloss.Style
	label      lipgloss.Style
	muted      lipgloss.Style
	status     lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	fg, accent, muted := lipgloss.Color("236"), lipgloss.Color("99"), lipgloss.Color("245")
	if t == theme.Dark {
		fg, accent, muted = lipgloss.Color("230"), lipgloss.Color("212"), lipgloss.Color("241")
	}
	return styles{
		compliment: lipgloss.NewStyle().Foreground(fg).Bold(true).Padding(1, 2).
			Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		label:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(muted),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}
