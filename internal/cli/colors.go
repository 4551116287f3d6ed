package cli

type AnsiColor string

// ref https://hexdocs.pm/color_palette/ansi_color_codes.html
const (
	AnsiGray AnsiColor = "239"

	AnsiRed    AnsiColor = "9"
	AnsiYellow AnsiColor = "3"
	AnsiGreen  AnsiColor = "2"
	AnsiBlue   AnsiColor = "33"
)
