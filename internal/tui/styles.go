package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true)
	subtitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c")).Bold(true)
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	plainStyle         = lipgloss.NewStyle()

	heroAccentColor        = lipgloss.Color("#2ec4b6")
	heroDeepColor          = lipgloss.Color("#04231f")
	heroTextColor          = lipgloss.Color("#e8fff9")
	heroSecondaryTextColor = lipgloss.Color("#8fe3d6")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	heroBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Foreground(heroTextColor).Background(heroDeepColor).Padding(1, 2)
	heroSummaryStyle   = lipgloss.NewStyle().PaddingLeft(2)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	helpBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	formBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	focusedLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	blurredLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	chipStyle          = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	chipActiveStyle    = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(heroAccentColor)
	toastInfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#bde0fe")).Padding(0, 1)
	toastSuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#a3be8c")).Padding(0, 1)
	toastErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff4d0")).Background(lipgloss.Color("#9d0208")).Padding(0, 1)
	phaseStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd166"))
	conceptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	milestoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	practiceStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#f4a261"))
	durationStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	complexityLowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	complexityMidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd166"))
	complexityHiStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef476f"))
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroDeepColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#021512"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"██████╗   █████╗  ████████╗ ██╗  ██╗ ███████╗  ██████╗  ██████╗  ██╗   ██╗ ████████╗ ",
		"██╔══██╗ ██╔══██╗ ╚══██╔══╝ ██║  ██║ ██╔════╝ ██╔════╝ ██╔═══██╗ ██║   ██║ ╚══██╔══╝ ",
		"██████╔╝ ███████║    ██║    ███████║ ███████╗ ██║      ██║   ██║ ██║   ██║    ██║    ",
		"██╔═══╝  ██╔══██║    ██║    ██╔══██║ ╚════██║ ██║      ██║   ██║ ██║   ██║    ██║    ",
		"██║      ██║  ██║    ██║    ██║  ██║ ███████║ ╚██████╗ ╚██████╔╝ ╚██████╔╝    ██║    ",
		"╚═╝      ╚═╝  ╚═╝    ╚═╝    ╚═╝  ╚═╝ ╚══════╝  ╚═════╝  ╚═════╝   ╚═════╝     ╚═╝    ",
	}
)
