// Package pdf renders a generated Markdown brief into a themed, paginated
// PDF document.
package pdf

import "strconv"

// Theme is a named color scheme applied to every page of an export.
// Colors are hex strings like "#1d232a".
type Theme struct {
	Name        string `json:"name"`
	Background  string `json:"background"`
	Text        string `json:"text"`
	Headings    string `json:"headings"`
	Accent      string `json:"accent"`
	Borders     string `json:"borders"`
	Description string `json:"description"`
}

// Themes lists the available export themes. The first entry is the default.
var Themes = []Theme{
	{Name: "light", Background: "#ffffff", Text: "#1f2937", Headings: "#111827", Accent: "#3b82f6", Borders: "#e5e7eb", Description: "Clean light theme with black text"},
	{Name: "dark", Background: "#1d232a", Text: "#e5e7eb", Headings: "#f3f4f6", Accent: "#661AE6", Borders: "#374151", Description: "Dark theme with light text"},
	{Name: "cupcake", Background: "#faf7f5", Text: "#291334", Headings: "#4b5563", Accent: "#ef9fbc", Borders: "#e5dad2", Description: "Pastel colors with pink accents"},
	{Name: "bumblebee", Background: "#ffffff", Text: "#181830", Headings: "#000000", Accent: "#f5d60a", Borders: "#e5e7eb", Description: "Black and yellow theme"},
	{Name: "emerald", Background: "#ffffff", Text: "#333c4d", Headings: "#107568", Accent: "#66CC8A", Borders: "#e5e7eb", Description: "Green-based theme with clean look"},
	{Name: "corporate", Background: "#ffffff", Text: "#1d232a", Headings: "#1e293b", Accent: "#4b6bfb", Borders: "#cbd5e1", Description: "Professional blue and white theme"},
	{Name: "synthwave", Background: "#2d1b69", Text: "#f9f7fd", Headings: "#f9f7fd", Accent: "#e779c1", Borders: "#4a3c90", Description: "Retrowave with bright pink and purple"},
	{Name: "retro", Background: "#e8e2d6", Text: "#40342c", Headings: "#272625", Accent: "#ef8464", Borders: "#d3cabd", Description: "Vintage theme with warm, earthy tones"},
	{Name: "cyberpunk", Background: "#ffee00", Text: "#140741", Headings: "#000000", Accent: "#ff0055", Borders: "#ffdd00", Description: "Bright yellow with neon pink accents"},
	{Name: "valentine", Background: "#ffdbe7", Text: "#4b384c", Headings: "#4b384c", Accent: "#e96d9a", Borders: "#f5c8da", Description: "Pink theme with soft colors"},
	{Name: "halloween", Background: "#171618", Text: "#f7f5f2", Headings: "#f7f5f2", Accent: "#ff7a1a", Borders: "#2e2c2f", Description: "Dark theme with orange accents"},
	{Name: "lofi", Background: "#ffffff", Text: "#1f2937", Headings: "#000000", Accent: "#0d0d0d", Borders: "#e5e7eb", Description: "Monochrome black and white theme"},
	{Name: "dracula", Background: "#282a36", Text: "#f8f8f2", Headings: "#ff79c6", Accent: "#bd93f9", Borders: "#44475a", Description: "Dark theme with vivid purple and pink"},
	{Name: "business", Background: "#1C212B", Text: "#D1D5DB", Headings: "#ffffff", Accent: "#4891EB", Borders: "#374151", Description: "Dark business theme with blue accents"},
	{Name: "night", Background: "#0c1222", Text: "#e4e7ec", Headings: "#f0f1f4", Accent: "#39b5fd", Borders: "#192032", Description: "Dark blue theme with bright accents"},
	{Name: "coffee", Background: "#20161f", Text: "#e2d6cf", Headings: "#fbf2ea", Accent: "#dc944c", Borders: "#362c34", Description: "Warm dark brown theme with coffee accents"},
}

// DefaultTheme is used when no theme is requested.
var DefaultTheme = Themes[0]

// ThemeByName looks up a theme, reporting false for unknown names.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// hexToRGB parses "#rrggbb" into its color components. Malformed input
// yields black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(n >> 16 & 255), int(n >> 8 & 255), int(n & 255)
}
