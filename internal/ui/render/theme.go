package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	PromptFg    tcell.Color
	HintFg      tcell.Color
	ColumnFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	MatchFg     tcell.Color
	StatusFg    tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		PromptFg:    tcell.Color214, // amber prompt labels
		HintFg:      tcell.ColorLightSlateGray,
		ColumnFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		FileFg:      tcell.ColorDefault,
		MatchFg:     tcell.Color214,
		StatusFg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
	}
}
