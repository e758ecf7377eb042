package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"fantasywar/internal/models"
)

// ExportWAR writes a season report as CSV, one row per player in WAR order.
func ExportWAR(w io.Writer, report *models.SeasonReport) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "player_id", "player", "position", "games", "avg_points", "win_prob", "expected_wins", "war"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for i, r := range report.Results {
		row := []string{
			strconv.Itoa(i + 1),
			r.PlayerID,
			r.PlayerName,
			string(r.Position),
			strconv.Itoa(r.GamesPlayed),
			strconv.FormatFloat(r.AvgPoints, 'f', 2, 64),
			strconv.FormatFloat(r.WinProb, 'f', 4, 64),
			strconv.FormatFloat(r.ExpectedWins, 'f', 2, 64),
			strconv.FormatFloat(r.WAR, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportAuction writes auction values as CSV in dollar order.
func ExportAuction(w io.Writer, values []models.AuctionValue) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "player_id", "player", "position", "war", "value", "tier"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for i, v := range values {
		row := []string{
			strconv.Itoa(i + 1),
			v.PlayerID,
			v.PlayerName,
			string(v.Position),
			strconv.FormatFloat(v.WAR, 'f', 3, 64),
			strconv.Itoa(v.Value),
			strconv.Itoa(v.Tier),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
