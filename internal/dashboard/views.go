package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/edvin/minio-lite-admin/internal/model"
	"github.com/edvin/minio-lite-admin/internal/store"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	switch m.route.View {
	case ViewDashboard:
		sb.WriteString(m.renderDashboard())
	case ViewAccessKeys:
		sb.WriteString(m.renderAccessKeys())
	case ViewSiteReplication:
		sb.WriteString(m.renderSiteReplication())
	}

	if m.status != "" {
		sb.WriteString("\n")
		if m.statusErr {
			sb.WriteString(errorStyle.Render(m.status))
		} else {
			sb.WriteString(warningStyle.Render(m.status))
		}
	}

	if ShowFooter(m.height) {
		sb.WriteString("\n")
		sb.WriteString(m.renderFooter())
	}
	return sb.String()
}

func (m Model) renderHeader() string {
	tabs := []string{titleStyle.Render(ProductName)}
	for i, rt := range m.router.Pages() {
		label := fmt.Sprintf("%d %s", i+1, rt.Title)
		if rt.Path == m.route.Path {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	if m.loading() {
		tabs = append(tabs, m.spinner.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) loading() bool {
	switch m.route.View {
	case ViewDashboard:
		return m.serverInfo.Loading || m.dataUsage.Loading || m.buckets.Loading
	case ViewAccessKeys:
		return m.accessKeys.Loading
	case ViewSiteReplication:
		return m.siteReplication.Loading
	}
	return false
}

// placeholder returns the text shown instead of a section with no data, or
// "" when the data should be rendered.
func placeholder(loading bool, errMsg string, hasData bool) string {
	switch {
	case errMsg != "":
		return errorStyle.Render("Error: " + errMsg)
	case !hasData && loading:
		return mutedStyle.Render("Loading...")
	case !hasData:
		return mutedStyle.Render("No data")
	}
	return ""
}

func row(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func (m Model) renderDashboard() string {
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("Server"))
	sb.WriteString("\n")
	si := m.serverInfo
	if p := placeholder(si.Loading, si.Error, si.Data != nil); p != "" {
		sb.WriteString(p + "\n")
	} else {
		sb.WriteString(row("Mode", si.Data.Mode))
		if si.Data.Region != "" {
			sb.WriteString(row("Region", si.Data.Region))
		}
		sb.WriteString(row("Deployment", si.Data.DeploymentID))
	}

	sb.WriteString(sectionStyle.Render("Storage"))
	sb.WriteString("\n")
	du := m.dataUsage
	if p := placeholder(du.Loading, du.Error, du.Data != nil); p != "" {
		sb.WriteString(p + "\n")
	} else {
		sb.WriteString(renderStorage(m.usageBar, du.Data))
	}

	sb.WriteString(sectionStyle.Render("Buckets"))
	sb.WriteString("\n")
	sb.WriteString(renderBuckets(m.buckets))
	return sb.String()
}

func renderStorage(bar progress.Model, d *model.DataUsage) string {
	var sb strings.Builder
	sb.WriteString(bar.ViewAs(d.UsagePercentage/100) + " " + formatPercent(d.UsagePercentage) + " used\n")
	sb.WriteString(row("Used", fmt.Sprintf("%s of %s", FormatBytes(d.TotalUsedCapacity), FormatBytes(d.TotalCapacity))))
	sb.WriteString(row("Free", FormatBytes(d.TotalFreeCapacity)))
	sb.WriteString(row("Disks", fmt.Sprintf("%s online, %s offline, %s healing",
		lipgloss.NewStyle().Foreground(ColorSuccess).Render(fmt.Sprint(d.OnlineDisks)),
		lipgloss.NewStyle().Foreground(ColorError).Render(fmt.Sprint(d.OfflineDisks)),
		lipgloss.NewStyle().Foreground(ColorWarning).Render(fmt.Sprint(d.HealingDisks)),
	)))
	sb.WriteString(row("Pools", fmt.Sprint(d.PoolsCount)))
	sb.WriteString(row("Objects", humanize.Comma(int64(d.ObjectsCount))))
	sb.WriteString(row("Buckets", humanize.Comma(int64(d.BucketsCount))))

	if len(d.DiskDetails) > 0 {
		sb.WriteString(sectionStyle.Render("Disks"))
		sb.WriteString("\n")
		for _, disk := range d.DiskDetails {
			dot := lipgloss.NewStyle().Foreground(DiskStateColor(disk.State)).Render("●")
			sb.WriteString(fmt.Sprintf("%s %s%s %s %s / %s (%s)\n",
				dot,
				disk.Endpoint,
				disk.Path,
				mutedStyle.Render(fmt.Sprintf("pool %d set %d", disk.Pool, disk.Set)),
				FormatBytes(disk.UsedSpace),
				FormatBytes(disk.TotalSpace),
				formatPercent(disk.Utilization),
			))
		}
	}
	return sb.String()
}

// maxBucketLines bounds the bucket list on the dashboard.
const maxBucketLines = 10

func renderBuckets(st store.State[*model.BucketsResponse]) string {
	if p := placeholder(st.Loading, st.Error, st.Data != nil); p != "" {
		return p + "\n"
	}
	if len(st.Data.Buckets) == 0 {
		return mutedStyle.Render("No buckets") + "\n"
	}

	var sb strings.Builder
	for i, b := range st.Data.Buckets {
		if i == maxBucketLines {
			sb.WriteString(mutedStyle.Render(fmt.Sprintf("… and %d more", len(st.Data.Buckets)-maxBucketLines)))
			sb.WriteString("\n")
			break
		}
		created := "-"
		if b.CreatedAt != nil {
			created = humanize.Time(*b.CreatedAt)
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", b.Name, mutedStyle.Render("created "+created)))
	}
	return sb.String()
}

func (m Model) renderAccessKeys() string {
	var sb strings.Builder

	tabs := make([]string, 0, len(keyFilters))
	for i, f := range keyFilters {
		if i == m.filter {
			tabs = append(tabs, activeTabStyle.Render(filterLabels[f]))
		} else {
			tabs = append(tabs, tabStyle.Render(filterLabels[f]))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n")

	ak := m.accessKeys
	keys := ak.Data.AccessKeys
	if p := placeholder(ak.Loading, ak.Error, len(keys) > 0); p != "" {
		if ak.Error == "" && !ak.Loading {
			p = mutedStyle.Render("No access keys")
		}
		sb.WriteString(p + "\n")
		return sb.String()
	}

	sb.WriteString(mutedStyle.Render(fmt.Sprintf(
		"%d total · %d users · %d service accounts · %d sts · %d enabled · %d disabled",
		ak.Data.Total,
		len(store.UserKeys(keys)),
		len(store.ServiceAccountKeys(keys)),
		len(store.STSKeys(keys)),
		len(store.EnabledKeys(keys)),
		len(store.DisabledKeys(keys)),
	)))
	sb.WriteString("\n")

	for i, k := range keys {
		line := renderKeyLine(k)
		if i == m.selected {
			line = selectedStyle.Render(line)
		} else {
			line = unselectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderKeyLine(k model.AccessKeyInfo) string {
	status := lipgloss.NewStyle().Foreground(StatusColor(k.AccountStatus)).Render("●")
	kind := lipgloss.NewStyle().Foreground(TypeColor(k.Type)).Width(16).Render(TypeDisplayName(k.Type))

	line := fmt.Sprintf("%s %-24s %s %s", status, k.AccessKey, kind, mutedStyle.Render(k.ParentUser))
	if k.Name != "" {
		line += " " + k.Name
	}
	if k.Expiration != nil {
		line += " " + mutedStyle.Render("expires "+*k.Expiration)
	}
	return line
}

func (m Model) renderSiteReplication() string {
	var sb strings.Builder
	sr := m.siteReplication

	sb.WriteString(sectionStyle.Render("Site Replication"))
	sb.WriteString("\n")
	if p := placeholder(sr.Loading, sr.Error, sr.Data != nil); p != "" {
		sb.WriteString(p + "\n")
		return sb.String()
	}
	if !sr.Data.Enabled {
		sb.WriteString(mutedStyle.Render("Site replication is not configured") + "\n")
		return sb.String()
	}

	sb.WriteString(row("Group", sr.Data.Name))
	sb.WriteString(row("Sites", fmt.Sprint(len(sr.Data.Sites))))
	for _, site := range sr.Data.Sites {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n", site.Name, site.Endpoint, mutedStyle.Render(site.DeploymentID)))
	}
	return sb.String()
}

// renderFooter renders the footer with keyboard shortcuts.
func (m Model) renderFooter() string {
	help := "1/2/3: switch view | r: refresh | q: quit"
	if m.route.View == ViewAccessKeys {
		help = "tab: filter | j/k: select | e: enable/disable | x: delete | " + help
	}
	return footerStyle.Render(help)
}
