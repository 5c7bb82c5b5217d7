// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/marketing-agent/internal/types"
	"github.com/jonathan/marketing-agent/internal/workflow"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// previewChars is how much of a content body is shown in list views
	previewChars = 120
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentItems outputs the pending-content list, one block per item.
func (p *Printer) PrintContentItems(items []types.ContentItem) {
	if len(items) == 0 {
		p.printBox("PENDING CONTENT", "No pending content. All content has been reviewed.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Items awaiting approval: %d\n\n", len(items)))

	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%s  [%s / %s]\n", item.ID, item.Platform, item.ContentType))
		if item.ClientName != "" {
			sb.WriteString(fmt.Sprintf("    Client: %s\n", item.ClientName))
		} else {
			sb.WriteString(fmt.Sprintf("    Client: %s\n", item.ClientID))
		}
		preview := strings.ReplaceAll(item.Content, "\n", " ")
		if len(preview) > previewChars {
			preview = preview[:previewChars-3] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", preview))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PENDING CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWorkflow outputs the approval workflow progress banner.
func (p *Printer) PrintWorkflow(state workflow.State) {
	var sb strings.Builder
	completed := make(map[workflow.Step]bool, len(state.Completed))
	for _, step := range state.Completed {
		completed[step] = true
	}

	for _, step := range workflow.Steps() {
		marker := "[ ]"
		switch {
		case completed[step]:
			marker = "[x]"
		case step == state.Current:
			marker = "[>]"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, step))
	}
	sb.WriteString(fmt.Sprintf("\nPhase: %s", state.Phase))
	if state.ItemID != "" {
		sb.WriteString(fmt.Sprintf("  Item: %s", state.ItemID))
	}

	p.printBox("WORKFLOW PROGRESS", sb.String())
}

// PrintCampaigns outputs the campaign list with metrics.
func (p *Printer) PrintCampaigns(campaigns []types.Campaign) {
	if len(campaigns) == 0 {
		p.printBox("CAMPAIGNS", "No campaigns yet.")
		return
	}

	var sb strings.Builder
	for i, campaign := range campaigns {
		sb.WriteString(fmt.Sprintf("%s  (%s)\n", campaign.Name, campaign.Status))
		sb.WriteString(fmt.Sprintf("    Platform: %s  Budget: $%.2f\n", campaign.Platform, campaign.Budget))
		sb.WriteString(fmt.Sprintf("    %s → %s\n", campaign.StartDate, campaign.EndDate))
		sb.WriteString(fmt.Sprintf("    Impressions: %d  Clicks: %d  CTR: %.2f%%\n", campaign.Impressions, campaign.Clicks, campaign.CTR))
		if i < len(campaigns)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAMPAIGNS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDashboard outputs the aggregate dashboard counters.
func (p *Printer) PrintDashboard(stats types.DashboardStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total clients:     %d\n", stats.TotalClients))
	sb.WriteString(fmt.Sprintf("Pending content:   %d\n", stats.PendingContent))
	sb.WriteString(fmt.Sprintf("Approved content:  %d\n", stats.ApprovedContent))
	sb.WriteString(fmt.Sprintf("Active campaigns:  %d", stats.ActiveCampaigns))

	p.printBox("DASHBOARD", sb.String())
}

// PrintAnalytics outputs the analytics report.
func (p *Printer) PrintAnalytics(report *types.AnalyticsReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Time range: %s\n\n", report.TimeRange))

	count := min(len(report.PerformanceOverTime), maxItemsToShow)
	for i := 0; i < count; i++ {
		point := report.PerformanceOverTime[i]
		sb.WriteString(fmt.Sprintf("%-4s views %-6d eng %-5d clicks %d\n", point.Date, point.Views, point.Engagement, point.Clicks))
	}
	if len(report.PerformanceOverTime) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more rows\n", len(report.PerformanceOverTime)-maxItemsToShow))
	}

	if len(report.PlatformPerformance) > 0 {
		sb.WriteString("\nBy platform:\n")
		for _, share := range report.PlatformPerformance {
			sb.WriteString(fmt.Sprintf("  %-10s %3d%%  %d posts\n", share.Name, share.Value, share.Posts))
		}
	}

	p.printBox("ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClients outputs the onboarded client list.
func (p *Printer) PrintClients(clients []types.Client) {
	if len(clients) == 0 {
		p.printBox("CLIENTS", "No clients onboarded yet.")
		return
	}

	var sb strings.Builder
	for _, client := range clients {
		sb.WriteString(fmt.Sprintf("%s  %s\n", client.ClientID, client.CompanyName))
	}

	p.printBox("CLIENTS", strings.TrimSuffix(sb.String(), "\n"))
}
