package browser

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewBrowse ViewMode = iota
	ViewHelp
)

// Pagination messages are the pokedex events themselves: Started,
// PageLoaded, PageFailed, PrimaryAction and CategorySelected all reach
// Update as tea.Msg values and are reduced in order.
