package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the history path
)

// Banner Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
