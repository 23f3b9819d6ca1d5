package menu

// ViewStyle selects which of the interchangeable menu layouts renders the
// item list. All three share the same data contract.
type ViewStyle string

const (
	ViewGrid ViewStyle = "grid"
	ViewList ViewStyle = "list"
	ViewCard ViewStyle = "card"
)

func validViewStyle(s string) bool {
	switch ViewStyle(s) {
	case ViewGrid, ViewList, ViewCard:
		return true
	}
	return false
}

// ResolveViewStyle picks the active layout: the visitor's stated preference
// wins, then the restaurant's configured default, then grid. Unknown values
// fall through to the next level.
func ResolveViewStyle(requested, restaurantDefault string) ViewStyle {
	if validViewStyle(requested) {
		return ViewStyle(requested)
	}
	if validViewStyle(restaurantDefault) {
		return ViewStyle(restaurantDefault)
	}
	return ViewGrid
}
