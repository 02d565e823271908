package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/config"
	"github.com/renshuapp/renshu/internal/deck"
	"github.com/renshuapp/renshu/internal/store"
	"github.com/renshuapp/renshu/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up renshu for the first time",
	Long:  `Initialize renshu with your preferences. Creates config and data directories.`,
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitWithReader(bufio.NewReader(os.Stdin))
}

func runInitWithReader(reader *bufio.Reader) error {
	fmt.Println(ui.Title.Render(ui.IconTorii + " Welcome to renshu!"))
	fmt.Println()
	ui.Inf("Let's get you set up. This takes about 30 seconds.")
	fmt.Println()

	cfg := &config.Config{}
	cfg.User.Name = prompt(reader, "  What should I call you?", guessName())
	fmt.Println()

	deckID := prompt(reader,
		fmt.Sprintf("  Default deck? (%s)", strings.Join(deck.IDs(), ", ")), "hiragana")
	if _, err := deck.ByID(deckID); err != nil {
		ui.Warn(fmt.Sprintf("unknown deck %q — using hiragana", deckID))
		deckID = "hiragana"
	}
	cfg.Study.DefaultDeck = deckID
	fmt.Println()

	themeID := prompt(reader, "  Theme? (ink, sakura, matcha, yuki, tsuki)", "ink")
	cfg.Theme.Default = themeID

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Create the database up front so the first drill is instant.
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("creating data store: %w", err)
	}
	defer db.Close()

	fmt.Println()
	ui.Ok("All set, " + cfg.User.Name + "!")
	ui.Kv("  Config", config.GetPaths().ConfigFile)
	ui.Kv("  Data", config.GetPaths().DBFile)
	fmt.Println()
	ui.Tip("`renshu drill` to study, `renshu` for your dashboard.")
	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s %s ", question, ui.Muted.Render(fmt.Sprintf("(%s)", defaultVal)))
	} else {
		fmt.Printf("%s ", question)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

func guessName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return ""
}
