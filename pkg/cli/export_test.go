package cli

var (
	RunWithWriter  = run
	FormatStatus   = formatStatus
	Tint           = tint
	ParseColorMode = parseColorMode
)

const (
	ColorAuto   = colorAuto
	ColorAlways = colorAlways
	ColorNever  = colorNever
)
