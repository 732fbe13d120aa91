package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/edvin/minio-lite-admin/internal/model"
)

// StatusColor maps an account status to a foreground color. Unknown
// statuses render muted.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case model.AccountEnabled:
		return ColorSuccess
	case model.AccountDisabled:
		return ColorError
	default:
		return ColorMuted
	}
}

// TypeDisplayName returns the label for an access key type. Unknown types
// are shown as-is.
func TypeDisplayName(keyType string) string {
	switch keyType {
	case model.KeyTypeUser:
		return "User"
	case model.KeyTypeServiceAccount:
		return "Service Account"
	case model.KeyTypeSTS:
		return "STS Token"
	case "":
		return "Unknown"
	default:
		return keyType
	}
}

func TypeColor(keyType string) lipgloss.Color {
	switch keyType {
	case model.KeyTypeUser:
		return ColorSecondary
	case model.KeyTypeServiceAccount:
		return ColorAccent
	case model.KeyTypeSTS:
		return ColorWarning
	default:
		return ColorMuted
	}
}

// DiskStateColor maps a disk state to a foreground color.
func DiskStateColor(state string) lipgloss.Color {
	switch state {
	case model.DiskStateOK:
		return ColorSuccess
	case model.DiskStateOffline:
		return ColorError
	case "healing":
		return ColorWarning
	default:
		return ColorMuted
	}
}

// FormatBytes renders n in IEC units, e.g. "1.5 GiB".
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
