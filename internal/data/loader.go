package data

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
	"fantasywar/internal/scoring"
)

// Loader turns published weekly stat dumps into scored player-weeks. All
// network and cache suspension happens here; the calculators receive fully
// materialized snapshots.
type Loader struct {
	client *Client
	cache  *FileCache
	sys    scoring.System
}

func NewLoader(client *Client, cache *FileCache, sys scoring.System) *Loader {
	return &Loader{client: client, cache: cache, sys: sys}
}

// LoadSeason fetches and scores every player-week of one season.
func (l *Loader) LoadSeason(season int) ([]models.PlayerWeekStats, error) {
	path := fmt.Sprintf("/player_stats/player_stats_%d.csv", season)

	payload, ok := []byte(nil), false
	if l.cache != nil {
		payload, ok = l.cache.Get(path)
	}
	if !ok {
		var err error
		payload, err = l.client.Get(path)
		if err != nil {
			return nil, fmt.Errorf("fetching season %d stats: %w", season, err)
		}
		if l.cache != nil {
			l.cache.Set(path, payload)
		}
	}

	rows, err := l.parse(season, payload)
	if err != nil {
		return nil, fmt.Errorf("parsing season %d stats: %w", season, err)
	}

	slog.Info("season stats loaded", "season", season, "rows", len(rows))
	return rows, nil
}

// Position spellings vary across stat providers; fold them onto the closed
// roster set.
var positionAliases = map[string]league.Position{
	"HB": league.RB, "FB": league.RB,
	"K": league.PK, "P": league.PN,
	"NT": league.DT, "DL": league.DT,
	"EDGE": league.DE,
	"OLB":  league.LB, "ILB": league.LB, "MLB": league.LB,
	"FS": league.S, "SS": league.S, "DB": league.CB,
}

func normalizePosition(raw string) (league.Position, bool) {
	pos := league.Position(raw)
	if _, ok := pos.Class(); ok {
		return pos, true
	}
	if alias, ok := positionAliases[raw]; ok {
		return alias, true
	}
	return "", false
}

type row struct {
	header map[string]int
	fields []string
}

func (r row) str(name string) string {
	i, ok := r.header[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r row) num(name string) float64 {
	v, err := strconv.ParseFloat(r.str(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func (l *Loader) parse(season int, payload []byte) ([]models.PlayerWeekStats, error) {
	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	header := make(map[string]int, len(head))
	for i, name := range head {
		header[name] = i
	}

	var out []models.PlayerWeekStats
	skipped := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}
		r := row{header: header, fields: fields}

		pos, ok := normalizePosition(r.str("position"))
		if !ok {
			skipped++
			continue
		}
		week, err := strconv.Atoi(r.str("week"))
		if err != nil {
			skipped++
			continue
		}

		name := r.str("player_display_name")
		if name == "" {
			name = r.str("player_name")
		}

		out = append(out, models.PlayerWeekStats{
			PlayerID:      r.str("player_id"),
			PlayerName:    name,
			Team:          r.str("recent_team"),
			Position:      pos,
			Season:        season,
			Week:          week,
			FantasyPoints: l.score(pos, r),
			Active:        true,
		})
	}

	if skipped > 0 {
		slog.Debug("rows skipped during parse", "season", season, "rows", skipped)
	}
	return out, nil
}

func (l *Loader) score(pos league.Position, r row) float64 {
	class, _ := pos.Class()
	switch class {
	case league.ClassOffense:
		return l.sys.ScoreOffense(scoring.OffenseLine{
			PassingYards:   r.num("passing_yards"),
			PassAttempts:   r.num("attempts"),
			Completions:    r.num("completions"),
			PassingTDs:     r.num("passing_tds"),
			Interceptions:  r.num("interceptions"),
			SacksTaken:     r.num("sacks"),
			SackYards:      r.num("sack_yards"),
			Passing2Pt:     r.num("passing_2pt_conversions"),
			RushingYards:   r.num("rushing_yards"),
			RushAttempts:   r.num("carries"),
			RushingTDs:     r.num("rushing_tds"),
			Rushing2Pt:     r.num("rushing_2pt_conversions"),
			ReceivingYards: r.num("receiving_yards"),
			Targets:        r.num("targets"),
			Receptions:     r.num("receptions"),
			ReceivingTDs:   r.num("receiving_tds"),
			Receiving2Pt:   r.num("receiving_2pt_conversions"),
			FirstDowns:     r.num("passing_first_downs") + r.num("rushing_first_downs") + r.num("receiving_first_downs"),
			FumblesLost:    r.num("sack_fumbles_lost") + r.num("rushing_fumbles_lost") + r.num("receiving_fumbles_lost"),
		})
	case league.ClassDefense:
		return l.sys.ScoreDefense(pos, scoring.DefenseLine{
			Tackles:           r.num("def_tackles_solo"),
			Assists:           r.num("def_tackle_assists"),
			TacklesForLoss:    r.num("def_tackles_for_loss"),
			Sacks:             r.num("def_sacks"),
			SackYards:         r.num("def_sack_yards"),
			QBHits:            r.num("def_qb_hits"),
			PassesDefended:    r.num("def_pass_defended"),
			Interceptions:     r.num("def_interceptions"),
			InterceptionYards: r.num("def_interception_yards"),
			ForcedFumbles:     r.num("def_fumbles_forced"),
			FumbleRecoveries:  r.num("def_fumble_recovery_opp"),
			Safeties:          r.num("def_safety"),
			DefensiveTDs:      r.num("def_tds"),
		})
	default:
		if pos == league.PN {
			return l.sys.ScorePunting(scoring.PuntingLine{
				Punts:         r.num("punts"),
				PuntYards:     r.num("punt_yards"),
				PuntsInside20: r.num("punts_inside_20"),
				PuntsBlocked:  r.num("punts_blocked"),
			})
		}
		return l.sys.ScoreKicking(scoring.KickingLine{
			FGMade0to29:  r.num("fg_made_0_19") + r.num("fg_made_20_29"),
			FGMade30to39: r.num("fg_made_30_39"),
			FGMade40Plus: r.num("fg_made_40_49") + r.num("fg_made_50_59") + r.num("fg_made_60_"),
			FGMissed:     r.num("fg_missed"),
			PATMade:      r.num("pat_made"),
			PATMissed:    r.num("pat_missed"),
		})
	}
}
