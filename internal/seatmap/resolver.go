package seatmap

// ResolveCategory returns the category owning rowIndex.
//
// Categories are walked in reverse so the last configured category owns the
// first rows. The match is mapped back to the first category in the original
// list with the same name. Rows past every range fall back to the "General"
// category when one exists. Negative indexes never match.
func ResolveCategory(rowIndex int, categories []SeatCategory) (SeatCategory, bool) {
	if len(categories) == 0 || rowIndex < 0 {
		return SeatCategory{}, false
	}

	running := 0
	for i := len(categories) - 1; i >= 0; i-- {
		count := categories[i].RowCount
		if count < 0 {
			count = 0
		}
		if rowIndex >= running && rowIndex < running+count {
			return findByName(categories, categories[i].Name)
		}
		running += count
	}

	return findByName(categories, GeneralCategory)
}

// RowRanges lists the row span of every category that owns at least one row,
// ordered from the front row backwards.
func RowRanges(categories []SeatCategory) []RowRange {
	ranges := make([]RowRange, 0, len(categories))

	running := 0
	for i := len(categories) - 1; i >= 0; i-- {
		count := categories[i].RowCount
		if count <= 0 {
			continue
		}
		first, last := running, running+count-1
		ranges = append(ranges, RowRange{
			Category: categories[i].Name,
			FirstRow: first,
			LastRow:  last,
			From:     RowLetter(first),
			To:       RowLetter(last),
		})
		running += count
	}

	return ranges
}

// TotalRows is the number of rows covered by the configured categories
func TotalRows(categories []SeatCategory) int {
	total := 0
	for _, c := range categories {
		if c.RowCount > 0 {
			total += c.RowCount
		}
	}
	return total
}

func findByName(categories []SeatCategory, name string) (SeatCategory, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return SeatCategory{}, false
}
