package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-fixtures/internal/config"
	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
	"github.com/MKhiriev/go-pass-fixtures/internal/vault"
	"github.com/MKhiriev/go-pass-fixtures/internal/wifi"
	"github.com/MKhiriev/go-pass-fixtures/models"
)

// RunInspect opens the vault at <dbpath> and lists every entry that looks
// like a wifi credential together with its WIFI: payload.
//
//	inspect [-search text] [-qr] <dbpath> <password>
func RunInspect(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	prog := programName(args, "inspect")
	log := logger.NewLoggerWithWriter("inspect", stderr)

	cfg, positional, err := config.GetInspectConfig(flagArgs(args))
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stdout, MsgInspectUsage, prog)
			return ExitOK
		}
		if errors.Is(err, config.ErrInvalidFlags) {
			fmt.Fprintf(stdout, MsgInspectUsage, prog)
		}
		log.Err(err).Msg("error getting configs")
		return ExitFailure
	}

	if len(positional) != 2 {
		fmt.Fprintf(stdout, MsgInspectUsage, prog)
		return ExitFailure
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Err(err).Msg("error setting log level")
		return ExitFailure
	}
	ctx = log.WithContext(ctx)

	v, err := vault.Open(ctx, positional[0], positional[1])
	if err != nil {
		log.Err(err).Str("path", positional[0]).Msg("error opening vault")
		return ExitFailure
	}

	creds := wifi.Filter(v.Entries(), cfg.Inspect.Search)
	log.Debug().
		Int("entries", len(v.Entries())).
		Int("credentials", len(creds)).
		Str("search", cfg.Inspect.Search).
		Msg("vault inspected")

	if err = render(stdout, v, creds, cfg.Inspect.QR); err != nil {
		log.Err(err).Msg("error rendering credentials")
		return ExitFailure
	}

	return ExitOK
}

func render(w io.Writer, v *vault.Vault, creds []models.Entry, withQR bool) error {
	st := newStyles(w)

	if len(creds) == 0 {
		fmt.Fprintln(w, st.empty.Render(MsgNoCredentials))
		return nil
	}

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%d wifi credential(s) in %s", len(creds), v.Path())))

	for _, e := range creds {
		card, err := renderCredential(st, v, e, withQR)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, card)
	}
	return nil
}

func renderCredential(st styles, v *vault.Vault, e models.Entry, withQR bool) (string, error) {
	groupPath, err := v.GroupPath(e.GroupID)
	if err != nil {
		return "", err
	}

	security := wifi.SecurityType(e.Title)
	payload := wifi.Payload(e)

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(label), st.value.Render(value))
	}

	lines := []string{
		st.title.Render(e.Title),
		row("Group", strings.Join(groupPath, "/")),
		row("SSID", e.Username),
		row("Security", st.security[security].Render(security)),
		row("Password", e.Password),
		st.payload.Render(payload),
	}

	if withQR {
		qr, err := wifi.QRCode(payload)
		if err != nil {
			return "", err
		}
		lines = append(lines, strings.TrimRight(qr, "\n"))
	}

	return st.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), nil
}
