package achievements

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
)

// testTicket holds 15 numbers with all four corners populated.
func testTicket() models.Ticket {
	return models.Ticket{
		{1, 10, 20, 30, 0, 0, 0, 0, 81},
		{0, 11, 21, 31, 41, 50, 0, 0, 0},
		{2, 0, 0, 0, 42, 51, 60, 0, 80},
	}
}

func markRow(t models.Ticket, marked *models.MarkGrid, row int) {
	for c := 0; c < models.TicketCols; c++ {
		if t[row][c] != 0 {
			marked[row][c] = true
		}
	}
}

func markAll(t models.Ticket, marked *models.MarkGrid) {
	for r := 0; r < models.TicketRows; r++ {
		markRow(t, marked, r)
	}
}

func TestEvaluateNothingFires(t *testing.T) {
	record := &models.AchievementRecord{}

	out := Evaluate(&EvaluateInput{
		Ticket:       testTicket(),
		Marked:       models.MarkGrid{},
		Record:       record,
		PlayerName:   "alice",
		TotalPlayers: 3,
	})

	require.False(t, out.Changed)
	require.Empty(t, out.NewlyWon)
	require.Equal(t, &models.AchievementRecord{}, record)
}

func TestEvaluateFirst5AndFirstLine(t *testing.T) {
	ticket := testTicket()
	marked := models.MarkGrid{}
	markRow(ticket, &marked, 0)

	record := &models.AchievementRecord{}
	out := Evaluate(&EvaluateInput{
		Ticket:       ticket,
		Marked:       marked,
		Record:       record,
		PlayerName:   "alice",
		TotalPlayers: 3,
	})

	require.True(t, out.Changed)
	require.ElementsMatch(t, []Kind{KindFirst5, KindFirstLine}, out.NewlyWon)
	require.Equal(t, "alice", record.First5)
	require.Equal(t, "alice", record.FirstLine)
	require.Empty(t, record.SecondLine)
	require.Empty(t, record.Corners)
}

func TestEvaluateSecondAndLastLine(t *testing.T) {
	ticket := testTicket()

	marked := models.MarkGrid{}
	markRow(ticket, &marked, 1)
	record := &models.AchievementRecord{First5: "bob"}
	out := Evaluate(&EvaluateInput{Ticket: ticket, Marked: marked, Record: record, PlayerName: "alice", TotalPlayers: 3})
	require.Equal(t, []Kind{KindSecondLine}, out.NewlyWon)

	marked = models.MarkGrid{}
	markRow(ticket, &marked, 2)
	record = &models.AchievementRecord{First5: "bob"}
	out = Evaluate(&EvaluateInput{Ticket: ticket, Marked: marked, Record: record, PlayerName: "alice", TotalPlayers: 3})
	require.Contains(t, out.NewlyWon, KindLastLine)
	require.Equal(t, "alice", record.LastLine)
}

// Single-winner achievements are write-once: a later player satisfying the
// same condition never displaces the recorded winner.
func TestEvaluateWriteOnce(t *testing.T) {
	ticket := testTicket()
	marked := models.MarkGrid{}
	markRow(ticket, &marked, 0)

	record := &models.AchievementRecord{
		First5:    "alice",
		FirstLine: "alice",
	}

	out := Evaluate(&EvaluateInput{
		Ticket:       ticket,
		Marked:       marked,
		Record:       record,
		PlayerName:   "bob",
		TotalPlayers: 3,
	})

	require.False(t, out.Changed)
	require.Equal(t, "alice", record.First5)
	require.Equal(t, "alice", record.FirstLine)
}

func TestEvaluateCorners(t *testing.T) {
	ticket := testTicket()
	marked := models.MarkGrid{}
	marked[0][0] = true
	marked[0][8] = true
	marked[2][0] = true
	marked[2][8] = true

	record := &models.AchievementRecord{}
	out := Evaluate(&EvaluateInput{
		Ticket:       ticket,
		Marked:       marked,
		Record:       record,
		PlayerName:   "alice",
		TotalPlayers: 3,
	})

	require.Equal(t, []Kind{KindCorners}, out.NewlyWon)
	require.Equal(t, "alice", record.Corners)
}

// A ticket with only two populated corner cells can never win corners, and
// two marks are short of first 5.
func TestEvaluateTwoCornersAreNotEnough(t *testing.T) {
	ticket := models.Ticket{
		{1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 90},
	}
	marked := models.MarkGrid{}
	marked[0][0] = true
	marked[2][8] = true

	record := &models.AchievementRecord{}
	out := Evaluate(&EvaluateInput{
		Ticket:       ticket,
		Marked:       marked,
		Record:       record,
		PlayerName:   "alice",
		TotalPlayers: 3,
	})

	require.False(t, out.Changed)
	require.Empty(t, record.Corners)
	require.Empty(t, record.First5)
}

// Full housie ranks players in completion order, flips GameComplete exactly
// when all but one player have finished, and never lists a player twice.
func TestEvaluateFullHousieRanking(t *testing.T) {
	ticket := testTicket()
	marked := models.MarkGrid{}
	markAll(ticket, &marked)

	record := &models.AchievementRecord{
		First5:     "alice",
		Corners:    "alice",
		FirstLine:  "alice",
		SecondLine: "alice",
		LastLine:   "alice",
	}

	players := []string{"alice", "bob", "carol"}
	for i, name := range players {
		out := Evaluate(&EvaluateInput{
			Ticket:       ticket,
			Marked:       marked,
			Record:       record,
			PlayerName:   name,
			TotalPlayers: len(players),
		})

		require.Contains(t, out.NewlyWon, KindFullHousie)
		require.Equal(t, players[:i+1], record.FullHousieWinners)

		if i < len(players)-2 {
			require.False(t, record.GameComplete, "game completed too early at winner %d", i+1)
		} else {
			require.True(t, record.GameComplete)
		}
	}

	// Re-evaluating a listed winner appends nothing
	out := Evaluate(&EvaluateInput{
		Ticket:       ticket,
		Marked:       marked,
		Record:       record,
		PlayerName:   "bob",
		TotalPlayers: len(players),
	})
	require.False(t, out.Changed)
	require.Equal(t, players, record.FullHousieWinners)
}

// With two players the game completes as soon as the first winner lands.
func TestEvaluateFullHousieTwoPlayerRoom(t *testing.T) {
	ticket := testTicket()
	marked := models.MarkGrid{}
	markAll(ticket, &marked)

	record := &models.AchievementRecord{}
	out := Evaluate(&EvaluateInput{
		Ticket:       ticket,
		Marked:       marked,
		Record:       record,
		PlayerName:   "alice",
		TotalPlayers: 2,
	})

	require.True(t, out.Changed)
	require.Equal(t, []string{"alice"}, record.FullHousieWinners)
	require.True(t, record.GameComplete)
}

func TestOrdinal(t *testing.T) {
	require.Equal(t, "1st", Ordinal(1))
	require.Equal(t, "2nd", Ordinal(2))
	require.Equal(t, "3rd", Ordinal(3))
	require.Equal(t, "4th", Ordinal(4))
	require.Equal(t, "11th", Ordinal(11))
}
