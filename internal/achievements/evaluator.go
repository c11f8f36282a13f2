package achievements

import (
	"fmt"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
)

// Kind identifies a milestone condition
type Kind string

const (
	// KindFirst5 is awarded for marking any 5 numbers
	KindFirst5 Kind = "first5"

	// KindCorners is awarded for marking all four corner cells
	KindCorners Kind = "corners"

	// KindFirstLine, KindSecondLine and KindLastLine are awarded for
	// marking every number in the respective row
	KindFirstLine  Kind = "firstline"
	KindSecondLine Kind = "secondline"
	KindLastLine   Kind = "lastline"

	// KindFullHousie is awarded for marking all 15 numbers; it ranks
	// multiple winners by completion order
	KindFullHousie Kind = "fullhousie"
)

// EvaluateInput contains one player's view for an evaluation pass
type EvaluateInput struct {
	// Ticket is the player's ticket
	Ticket models.Ticket

	// Marked is the player's current mark grid
	Marked models.MarkGrid

	// Record is the room's achievement record, mutated in place
	Record *models.AchievementRecord

	// PlayerName is the player being evaluated
	PlayerName string

	// TotalPlayers is the room's expected player count
	TotalPlayers int
}

// EvaluateOutput contains the result of an evaluation pass
type EvaluateOutput struct {
	// Changed indicates whether the record was modified and should be
	// persisted
	Changed bool

	// NewlyWon lists the achievements this player won during this pass
	NewlyWon []Kind
}

// Evaluate checks every achievement rule in a single pass over the player's
// ticket and marks, filling the record for each condition that fires.
// Single-winner fields are write-once: an already-set field is never
// overwritten, even if this player's ticket also satisfies it. Evaluate
// never fails; a pass that fires nothing reports Changed false.
func Evaluate(in *EvaluateInput) *EvaluateOutput {
	out := &EvaluateOutput{}
	record := in.Record

	markedCount := in.Ticket.MarkedCount(in.Marked)

	if record.First5 == "" && markedCount >= 5 {
		record.First5 = in.PlayerName
		out.won(KindFirst5)
	}

	if record.Corners == "" && cornersMarked(in.Ticket, in.Marked) {
		record.Corners = in.PlayerName
		out.won(KindCorners)
	}

	if record.FirstLine == "" && in.Ticket.MarkedCountInRow(in.Marked, 0) == models.NumbersPerRow {
		record.FirstLine = in.PlayerName
		out.won(KindFirstLine)
	}

	if record.SecondLine == "" && in.Ticket.MarkedCountInRow(in.Marked, 1) == models.NumbersPerRow {
		record.SecondLine = in.PlayerName
		out.won(KindSecondLine)
	}

	if record.LastLine == "" && in.Ticket.MarkedCountInRow(in.Marked, 2) == models.NumbersPerRow {
		record.LastLine = in.PlayerName
		out.won(KindLastLine)
	}

	if !record.HasFullHousie(in.PlayerName) && markedCount == models.TicketNumbers {
		record.FullHousieWinners = append(record.FullHousieWinners, in.PlayerName)
		out.won(KindFullHousie)

		// The game ends once all but one player have a full housie.
		if len(record.FullHousieWinners) >= in.TotalPlayers-1 {
			record.GameComplete = true
		}
	}

	return out
}

func (o *EvaluateOutput) won(k Kind) {
	o.NewlyWon = append(o.NewlyWon, k)
	o.Changed = true
}

func cornersMarked(t models.Ticket, marked models.MarkGrid) bool {
	corners := [4][2]int{
		{0, 0},
		{0, models.TicketCols - 1},
		{models.TicketRows - 1, 0},
		{models.TicketRows - 1, models.TicketCols - 1},
	}
	for _, rc := range corners {
		if t[rc[0]][rc[1]] == 0 || !marked[rc[0]][rc[1]] {
			return false
		}
	}
	return true
}

// Ordinal formats a full-housie placement for display: 1 -> "1st",
// 2 -> "2nd", 3 -> "3rd", everything else -> "th".
func Ordinal(position int) string {
	suffix := "th"
	switch position {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", position, suffix)
}
