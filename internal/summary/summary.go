package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/enescakir/emoji"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/memelaunch/launcher/internal/launcher"
	"github.com/memelaunch/launcher/internal/logger"
)

// Render writes one row per outcome, in the given order, followed by a totals row.
func Render(w io.Writer, outcomes []launcher.Outcome) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"#", "Account", "Symbol", "Status", "Token", "URL / Error", "Tx", "Block"})

	succeeded := 0
	for _, o := range outcomes {
		if !o.Succeeded() {
			t.AppendRow(table.Row{o.Index + 1, logger.ShortAddress(o.Account), o.Symbol, emoji.CrossMark.String() + " " + stageLabel(o.Err), "", errorText(o.Err), "", ""})
			continue
		}

		succeeded++
		r := o.Result
		t.AppendRow(table.Row{
			o.Index + 1,
			logger.ShortAddress(o.Account),
			o.Symbol,
			emoji.CheckMarkButton.String(),
			logger.ShortAddress(r.Token.Hex()),
			r.URL,
			logger.ShortAddress(r.TxHash.Hex()),
			strconv.FormatUint(r.BlockNumber, 10),
		})
	}

	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d ok / %d failed", succeeded, len(outcomes)-succeeded)})
	t.Render()
}

// RenderChecks writes the offline verdict of every job followed by a totals row.
func RenderChecks(w io.Writer, checks []launcher.Check) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"#", "Account", "Symbol", "Status", "Value (BNB)", "Error"})

	passed := 0
	for _, c := range checks {
		if !c.Passed() {
			t.AppendRow(table.Row{c.Index + 1, logger.ShortAddress(c.Account), c.Symbol, emoji.CrossMark.String() + " " + stageLabel(c.Err), "", errorText(c.Err)})
			continue
		}

		passed++
		t.AppendRow(table.Row{c.Index + 1, logger.ShortAddress(c.Account), c.Symbol, emoji.CheckMarkButton.String(), launcher.FormatEther(c.Value), ""})
	}

	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d ok / %d failed", passed, len(checks)-passed)})
	t.Render()
}

// Lines renders the short plain text form: one line per outcome.
func Lines(outcomes []launcher.Outcome) []string {
	lines := make([]string, len(outcomes))
	for i, o := range outcomes {
		if !o.Succeeded() {
			lines[i] = "ERROR: " + errorText(o.Err)
			continue
		}
		lines[i] = fmt.Sprintf("%s → %s → %s", logger.ShortAddress(o.Account), logger.ShortAddress(o.Result.Token.Hex()), o.Result.URL)
	}

	return lines
}

func stageLabel(err error) string {
	stage := launcher.StageOf(err)
	if stage == "" {
		return "failed"
	}

	return string(stage)
}

func errorText(err error) string {
	if err == nil {
		return "no result"
	}

	return err.Error()
}
