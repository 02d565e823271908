package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/renshuapp/renshu/internal/license"
	"github.com/renshuapp/renshu/internal/prefs"
	"github.com/renshuapp/renshu/internal/ui"
)

var premiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Manage the premium unlock (glass themes, wallpapers)",
}

var premiumActivateCmd = &cobra.Command{
	Use:   "activate <key>",
	Short: "Activate premium with your key (RENSHU-XXXX-XXXX-XXXX)",
	Long: `Store your activation key encrypted on disk. The key unlocks the glass
themes and custom wallpapers. You choose a passphrase; it is needed again only
to read the key back or re-verify.`,
	Args: cobra.ExactArgs(1),
	RunE: runPremiumActivate,
}

var premiumStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether premium is active",
	Args:  cobra.NoArgs,
	RunE:  runPremiumStatus,
}

var premiumDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Remove the stored key and relock premium themes",
	Args:  cobra.NoArgs,
	RunE:  runPremiumDeactivate,
}

func init() {
	premiumCmd.AddCommand(premiumActivateCmd)
	premiumCmd.AddCommand(premiumStatusCmd)
	premiumCmd.AddCommand(premiumDeactivateCmd)
}

func runPremiumActivate(_ *cobra.Command, args []string) error {
	key := args[0]
	if err := license.ValidateKey(key); err != nil {
		return err
	}

	passphrase, err := readLicensePassphrase(true)
	if err != nil {
		return err
	}

	if err := license.New(passphrase).Activate(key); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.prefs.SetBool(prefs.KeyPremiumUnlocked, true); err != nil {
		return err
	}

	ui.Ok("premium activated " + ui.IconStar)
	ui.Tip("`renshu theme set glass-dark` to try the glass look.")
	return nil
}

func runPremiumStatus(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	unlocked, err := a.prefs.GetBool(prefs.KeyPremiumUnlocked, false)
	if err != nil {
		return err
	}

	ui.Header(ui.IconStar + " Premium")
	if unlocked {
		ui.Kv("  Status", ui.Success.Render("active"))
		ui.Kv("  Unlocks", "glass themes, custom wallpapers")
	} else {
		ui.Kv("  Status", ui.Muted.Render("not active "+ui.IconLock))
		ui.Tip("`renshu premium activate <key>` to unlock glass themes.")
	}
	fmt.Println()
	return nil
}

func runPremiumDeactivate(_ *cobra.Command, _ []string) error {
	// Passphrase not needed to delete the file, only to read it.
	if err := license.New("").Deactivate(); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.prefs.SetBool(prefs.KeyPremiumUnlocked, false); err != nil {
		return err
	}

	ui.Ok("premium deactivated")
	return nil
}

func readLicensePassphrase(confirm bool) (string, error) {
	if p := os.Getenv("RENSHU_LICENSE_PASSPHRASE"); p != "" {
		return p, nil
	}
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", errors.New("passphrase required — set RENSHU_LICENSE_PASSPHRASE or run interactively")
	}

	fmt.Fprint(os.Stderr, ui.Muted.Render("  Passphrase: "))
	passBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	passphrase := strings.TrimSpace(string(passBytes))
	if passphrase == "" {
		return "", errors.New("passphrase can't be empty")
	}

	if confirm {
		fmt.Fprint(os.Stderr, ui.Muted.Render("  Confirm passphrase: "))
		confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase confirmation: %w", err)
		}
		if string(passBytes) != string(confirmBytes) {
			return "", errors.New("passphrases do not match")
		}
	}
	return passphrase, nil
}
