package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"trade-lab/content"
	"trade-lab/observability"
	"trade-lab/projection"
	"trade-lab/scenario"
)

// printReport renders the end-of-run summary: negotiation outcomes,
// content volume by kind and the bank's view of everyone's balance.
func printReport(built *scenario.Built, monitoring *observability.MonitoringManager, ledger *projection.Ledger, limit int) {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== Negotiations ======"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Group", "Product", "Amount", "Outcome", "Stages", "Opened", "Duration"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	negotiations := ledger.Negotiations()
	shown := negotiations
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, n := range shown {
		table.Append([]string{
			fmt.Sprintf("%d", n.GroupingID),
			n.Product,
			fmt.Sprintf("%d", n.Amount),
			colorizeOutcome(n.Outcome()),
			fmt.Sprintf("%d", len(n.Stages)),
			n.OpenedAt.UTC().Format("2006-01-02 15:04"),
			n.Duration().String(),
		})
	}
	table.Render()
	if len(shown) < len(negotiations) {
		fmt.Printf("... and %d more\n", len(negotiations)-len(shown))
	}

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== Content volume ======"))
	stats := monitoring.GetLatest()
	kinds := make([]string, 0, len(stats.ByKind))
	for kind := range stats.ByKind {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	volume := tablewriter.NewWriter(os.Stdout)
	volume.SetHeader([]string{"Kind", "Sent"})
	volume.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	volume.SetAlignment(tablewriter.ALIGN_LEFT)
	volume.SetBorder(false)
	for _, kind := range kinds {
		volume.Append([]string{kind, fmt.Sprintf("%d", stats.ByKind[content.Kind(kind)])})
	}
	volume.SetFooter([]string{"Total", fmt.Sprintf("%d", stats.TotalSent)})
	volume.Render()

	if built.Banking == nil {
		return
	}
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== Balances ======"))
	names := make([]string, 0, len(built.ActorsByName))
	for name := range built.ActorsByName {
		names = append(names, name)
	}
	sort.Strings(names)

	balances := tablewriter.NewWriter(os.Stdout)
	balances.SetHeader([]string{"Actor", "Balance"})
	balances.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	balances.SetAlignment(tablewriter.ALIGN_LEFT)
	balances.SetBorder(false)
	for _, name := range names {
		balance := built.Banking.Balance(built.ActorsByName[name].ID)
		balances.Append([]string{name, fmt.Sprintf("%.2f", balance)})
	}
	balances.Render()
}

func colorizeOutcome(o projection.Outcome) string {
	switch o {
	case projection.OutcomeSettled:
		return color.Green.Render(string(o))
	case projection.OutcomeDeclined:
		return color.Red.Render(string(o))
	case projection.OutcomeRestarted:
		return color.Yellow.Render(string(o))
	default:
		return string(o)
	}
}
