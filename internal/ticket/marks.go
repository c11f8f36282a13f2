package ticket

import (
	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
)

// ApplyCalledNumbers marks every unmarked ticket cell whose number has been
// called, mutating marked in place. It reports whether any cell changed, so
// callers know to persist and re-run achievement evaluation. Applying the
// same called numbers twice is a no-op the second time.
func ApplyCalledNumbers(t models.Ticket, marked *models.MarkGrid, calledNumbers []int) bool {
	called := make(map[int]bool, len(calledNumbers))
	for _, n := range calledNumbers {
		called[n] = true
	}

	changed := false
	for r := 0; r < models.TicketRows; r++ {
		for c := 0; c < models.TicketCols; c++ {
			if t[r][c] != 0 && called[t[r][c]] && !marked[r][c] {
				marked[r][c] = true
				changed = true
			}
		}
	}

	return changed
}
