package table

// Page size choices for list screens and card grids.
var (
	StandardPageSizes = []int{10, 20, 30, 40, 50}
	GridPageSizes     = []int{9, 18, 27, 36, 45}
)

// NextPageSize returns the option after current, wrapping around. An
// unknown current value yields the first option.
func NextPageSize(options []int, current int) int {
	if len(options) == 0 {
		return current
	}
	for i, n := range options {
		if n == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
