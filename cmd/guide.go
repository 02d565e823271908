package cmd

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/ui"
)

//go:embed guides/*.md
var guideFS embed.FS

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Read a study guide in your terminal",
	Long:  `Render a built-in guide as styled markdown. Run without a topic to list them.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGuide,
}

func runGuide(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listGuides()
	}

	topic := strings.TrimSuffix(args[0], ".md")
	md, err := guideFS.ReadFile("guides/" + topic + ".md")
	if err != nil {
		ui.Warn(fmt.Sprintf("no guide named %q", topic))
		return listGuides()
	}
	fmt.Print(ui.RenderMarkdown(string(md)))
	return nil
}

func listGuides() error {
	entries, err := guideFS.ReadDir("guides")
	if err != nil {
		return fmt.Errorf("reading embedded guides: %w", err)
	}

	var topics []string
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(topics)

	ui.Header("📖 Guides")
	for _, t := range topics {
		ui.Puts("  " + ui.Accent.Render(t))
	}
	fmt.Println()
	ui.Tip("`renshu guide <topic>` to read one.")
	return nil
}
