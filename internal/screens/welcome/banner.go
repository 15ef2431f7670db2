package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ██╗   ██╗██╗   ██╗██╗███████╗██╗ ██████╗ ███╗   ██╗
 ██╔════╝██╔══██╗██║   ██║██║   ██║██║██╔════╝██║██╔═══██╗████╗  ██║
 █████╗  ██║  ██║██║   ██║██║   ██║██║███████╗██║██║   ██║██╔██╗ ██║
 ██╔══╝  ██║  ██║██║   ██║╚██╗ ██╔╝██║╚════██║██║██║   ██║██║╚██╗██║
 ███████╗██████╔╝╚██████╔╝ ╚████╔╝ ██║███████║██║╚██████╔╝██║ ╚████║
 ╚══════╝╚═════╝  ╚═════╝   ╚═══╝  ╚═╝╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═══╝`

const bannerCompact = "E D U V I S I O N"

// RenderBanner returns the banner in the primary color, falling back to a
// compact form on terminals narrower than 72 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 72 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
