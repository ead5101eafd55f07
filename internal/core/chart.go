package core

type (
	// ChartDataset is one named numeric series with per-point styling.
	ChartDataset struct {
		Label           string    `json:"label"`
		Data            []float64 `json:"data"`
		BackgroundColor []string  `json:"backgroundColor"`
		BorderColor     []string  `json:"borderColor"`
		BorderWidth     int       `json:"borderWidth"`
	}

	// ChartSeries is the generic labeled-series shape consumed by an
	// external charting component.
	ChartSeries struct {
		Labels   []string       `json:"labels"`
		Datasets []ChartDataset `json:"datasets"`
	}
)

// CategoryChart reshapes the per-category sums into a single dataset. Only
// categories with at least one record appear, in enumeration order, each
// point styled with the category's fixed color.
func CategoryChart(records []Expense) ChartSeries {
	sums := ByCategory(records)

	var (
		labels []string
		data   []float64
		colors []string
	)
	for _, c := range Categories() {
		amount, ok := sums[c]
		if !ok {
			continue
		}
		labels = append(labels, string(c))
		data = append(data, amount)
		colors = append(colors, c.Color())
	}

	return ChartSeries{
		Labels: labels,
		Datasets: []ChartDataset{{
			Label:           "Expenses by Category",
			Data:            data,
			BackgroundColor: colors,
			BorderColor:     colors,
			BorderWidth:     1,
		}},
	}
}
