package domain

// Palette is the fixed marker color table. Categories past the end wrap
// around, so two categories can share a color once more than twenty are
// present.
var Palette = [20]string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#96CEB4", // green
	"#FCEA4B", // yellow
	"#FF8A80", // light red
	"#9C27B0", // purple
	"#FF5722", // deep orange
	"#795548", // brown
	"#607D8B", // blue grey
	"#E91E63", // pink
	"#00BCD4", // cyan
	"#8BC34A", // light green
	"#FFC107", // amber
	"#FF9800", // orange
	"#673AB7", // deep purple
	"#3F51B5", // indigo
	"#2196F3", // blue
	"#009688", // teal
	"#4CAF50", // green
}

// AssignColors maps each distinct category to a palette color by rank in
// first-appearance order over the aggregate scan. The mapping is a pure
// function of that order: the same aggregates always yield the same colors.
func AssignColors(aggregates []Aggregate) map[string]string {
	colors := make(map[string]string)
	rank := 0
	for _, agg := range aggregates {
		if _, ok := colors[agg.Category]; ok {
			continue
		}
		colors[agg.Category] = Palette[rank%len(Palette)]
		rank++
	}
	return colors
}
