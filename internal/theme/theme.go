// Package theme maps catalog categories to display colour tokens.
package theme

import "sort"

// Tokens is the fixed set of colour values used to draw a card and its tags.
// All values are hex colours.
type Tokens struct {
	CardBorder  string
	CardBgStart string
	CardBgEnd   string
	TagBgStart  string
	TagBgEnd    string
	TagShadow   string
	TagText     string
}

// Default is used for any category outside the table, including "unknown".
var Default = Tokens{
	CardBorder:  "#A8A878",
	CardBgStart: "#2B2B24",
	CardBgEnd:   "#1C1C18",
	TagBgStart:  "#A8A878",
	TagBgEnd:    "#8A8A59",
	TagShadow:   "#6D6D4E",
	TagText:     "#FFFFFF",
}

var table = map[string]Tokens{
	"normal":   {CardBorder: "#A8A77A", CardBgStart: "#2E2D25", CardBgEnd: "#1E1D18", TagBgStart: "#A8A77A", TagBgEnd: "#8E8D63", TagShadow: "#6D6C4F", TagText: "#FFFFFF"},
	"fire":     {CardBorder: "#EE8130", CardBgStart: "#3A1F0D", CardBgEnd: "#241307", TagBgStart: "#EE8130", TagBgEnd: "#C8651C", TagShadow: "#9C4A12", TagText: "#FFFFFF"},
	"water":    {CardBorder: "#6390F0", CardBgStart: "#14223F", CardBgEnd: "#0C1528", TagBgStart: "#6390F0", TagBgEnd: "#4571CF", TagShadow: "#2F529C", TagText: "#FFFFFF"},
	"electric": {CardBorder: "#F7D02C", CardBgStart: "#3B3208", CardBgEnd: "#262005", TagBgStart: "#F7D02C", TagBgEnd: "#D4AE12", TagShadow: "#A2850B", TagText: "#1A1A1A"},
	"grass":    {CardBorder: "#7AC74C", CardBgStart: "#1C3111", CardBgEnd: "#11200A", TagBgStart: "#7AC74C", TagBgEnd: "#5CA732", TagShadow: "#437D23", TagText: "#FFFFFF"},
	"ice":      {CardBorder: "#96D9D6", CardBgStart: "#1D3736", CardBgEnd: "#132423", TagBgStart: "#96D9D6", TagBgEnd: "#6FBDB9", TagShadow: "#4F918E", TagText: "#1A1A1A"},
	"fighting": {CardBorder: "#C22E28", CardBgStart: "#330B09", CardBgEnd: "#210706", TagBgStart: "#C22E28", TagBgEnd: "#9C211C", TagShadow: "#741813", TagText: "#FFFFFF"},
	"poison":   {CardBorder: "#A33EA1", CardBgStart: "#2B0F2A", CardBgEnd: "#1C0A1B", TagBgStart: "#A33EA1", TagBgEnd: "#822F80", TagShadow: "#60225F", TagText: "#FFFFFF"},
	"ground":   {CardBorder: "#E2BF65", CardBgStart: "#3A2F13", CardBgEnd: "#261F0C", TagBgStart: "#E2BF65", TagBgEnd: "#C49F43", TagShadow: "#94772E", TagText: "#1A1A1A"},
	"flying":   {CardBorder: "#A98FF3", CardBgStart: "#241D3D", CardBgEnd: "#171328", TagBgStart: "#A98FF3", TagBgEnd: "#8A6DD8", TagShadow: "#654FA6", TagText: "#FFFFFF"},
	"psychic":  {CardBorder: "#F95587", CardBgStart: "#3D1220", CardBgEnd: "#280C15", TagBgStart: "#F95587", TagBgEnd: "#D8386A", TagShadow: "#A5264F", TagText: "#FFFFFF"},
	"bug":      {CardBorder: "#A6B91A", CardBgStart: "#2A2F07", CardBgEnd: "#1B1F04", TagBgStart: "#A6B91A", TagBgEnd: "#859612", TagShadow: "#62700C", TagText: "#FFFFFF"},
	"rock":     {CardBorder: "#B6A136", CardBgStart: "#2F290D", CardBgEnd: "#1F1B08", TagBgStart: "#B6A136", TagBgEnd: "#938125", TagShadow: "#6D5F1A", TagText: "#FFFFFF"},
	"ghost":    {CardBorder: "#735797", CardBgStart: "#1D1527", CardBgEnd: "#130E1A", TagBgStart: "#735797", TagBgEnd: "#5A4279", TagShadow: "#42305A", TagText: "#FFFFFF"},
	"dragon":   {CardBorder: "#6F35FC", CardBgStart: "#1B0C42", CardBgEnd: "#12082C", TagBgStart: "#6F35FC", TagBgEnd: "#5420D6", TagShadow: "#3D17A0", TagText: "#FFFFFF"},
	"dark":     {CardBorder: "#705746", CardBgStart: "#1D1612", CardBgEnd: "#130E0B", TagBgStart: "#705746", TagBgEnd: "#574335", TagShadow: "#3F3026", TagText: "#FFFFFF"},
	"steel":    {CardBorder: "#B7B7CE", CardBgStart: "#2D2D38", CardBgEnd: "#1E1E25", TagBgStart: "#B7B7CE", TagBgEnd: "#9494B0", TagShadow: "#6E6E86", TagText: "#1A1A1A"},
	"fairy":    {CardBorder: "#D685AD", CardBgStart: "#37202B", CardBgEnd: "#24151C", TagBgStart: "#D685AD", TagBgEnd: "#B8658D", TagShadow: "#8A4A69", TagText: "#FFFFFF"},
}

// For returns the tokens for a category, or Default when it is not themed.
func For(category string) Tokens {
	if tokens, ok := table[category]; ok {
		return tokens
	}
	return Default
}

// Known reports whether a category has its own tokens.
func Known(category string) bool {
	_, ok := table[category]
	return ok
}

// Categories lists every themed category in alphabetical order.
func Categories() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
