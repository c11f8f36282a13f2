package models

const (
	// TicketRows is the number of rows on a tambola ticket
	TicketRows = 3

	// TicketCols is the number of columns on a tambola ticket
	TicketCols = 9

	// NumbersPerRow is how many cells in each row hold a number
	NumbersPerRow = 5

	// TicketNumbers is the total number of cells holding a number
	TicketNumbers = TicketRows * NumbersPerRow

	// MaxCallableNumber is the highest number a host can call
	MaxCallableNumber = 90
)

// Ticket is a 3x9 tambola ticket. A zero cell is blank; a nonzero cell
// holds a number from its column's band.
type Ticket [TicketRows][TicketCols]int

// MarkGrid mirrors a ticket's shape and records which cells have been
// marked off against the called numbers.
type MarkGrid [TicketRows][TicketCols]bool

// MarkedCount returns how many nonzero cells of the ticket are marked.
func (t Ticket) MarkedCount(marked MarkGrid) int {
	count := 0
	for r := 0; r < TicketRows; r++ {
		count += t.MarkedCountInRow(marked, r)
	}
	return count
}

// MarkedCountInRow returns how many nonzero cells of the given row are marked.
func (t Ticket) MarkedCountInRow(marked MarkGrid, row int) int {
	count := 0
	for c := 0; c < TicketCols; c++ {
		if t[row][c] != 0 && marked[row][c] {
			count++
		}
	}
	return count
}
