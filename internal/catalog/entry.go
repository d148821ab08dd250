package catalog

import (
	"math"
	"sort"
)

// BatchSize is the number of entries that make up one page.
const BatchSize = 10

// UnknownCategory is reported for entries that carry no categories.
const UnknownCategory = "unknown"

// PlaceholderArtwork is shown for entries without any sprite.
const PlaceholderArtwork = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/0.png"

// Stat is a single named base stat.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Entry is one creature in the catalog. Entries are immutable once fetched.
type Entry struct {
	ID         uint32   `json:"id"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"image_url,omitempty"`
	Categories []string `json:"categories"`
	Stats      []Stat   `json:"stats"`
}

// PrimaryCategory returns the lowest-slot category or UnknownCategory.
func (e Entry) PrimaryCategory() string {
	if len(e.Categories) == 0 {
		return UnknownCategory
	}
	return e.Categories[0]
}

// HasCategory reports whether the entry carries exactly the given category.
func (e Entry) HasCategory(name string) bool {
	for _, category := range e.Categories {
		if category == name {
			return true
		}
	}
	return false
}

// Artwork returns the image URL, falling back to the placeholder sprite.
func (e Entry) Artwork() string {
	if e.ImageURL == "" {
		return PlaceholderArtwork
	}
	return e.ImageURL
}

// PageRange returns the inclusive id range covered by a zero-based page.
// Both bounds saturate at math.MaxUint32.
func PageRange(page uint32) (first, last uint32) {
	first = saturatingAdd(saturatingMul(page, BatchSize), 1)
	last = saturatingAdd(first, BatchSize-1)
	return first, last
}

// SortByID orders entries ascending by id in place.
func SortByID(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
}

func saturatingMul(a, b uint32) uint32 {
	product := uint64(a) * uint64(b)
	if product > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(product)
}

func saturatingAdd(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	if sum > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(sum)
}
