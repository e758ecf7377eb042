package data

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantasywar/internal/league"
	"fantasywar/internal/scoring"
)

const statsCSV = `player_id,player_display_name,recent_team,position,week,passing_yards,attempts,completions,passing_tds,interceptions,def_tackles_solo,def_sacks,def_sack_yards,punts,punt_yards
00-001,Josh Thrower,BUF,QB,1,300,30,20,2,1,0,0,0,0,0
00-002,Max Crosser,LV,EDGE,1,0,0,0,0,0,3,1,7,0,0
00-003,Line Mann,DAL,OL,1,0,0,0,0,0,0,0,0,0,0
00-004,Bad Week,SEA,QB,oops,0,0,0,0,0,0,0,0,0,0
00-005,Big Leg,SF,P,1,0,0,0,0,0,0,0,0,4,180
`

func newTestLoader(t *testing.T, handler http.HandlerFunc) (*Loader, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cache, err := NewFileCache(t.TempDir(), time.Hour)
	require.NoError(t, err)

	return NewLoader(NewClient(server.URL), cache, scoring.Default()), server
}

func TestLoadSeasonParsesAndScores(t *testing.T) {
	loader, _ := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/player_stats/player_stats_2023.csv", r.URL.Path)
		w.Write([]byte(statsCSV))
	})

	rows, err := loader.LoadSeason(2023)
	require.NoError(t, err)

	// The offensive lineman and the unparseable week are dropped.
	require.Len(t, rows, 3)

	qb := rows[0]
	assert.Equal(t, "00-001", qb.PlayerID)
	assert.Equal(t, "Josh Thrower", qb.PlayerName)
	assert.Equal(t, league.QB, qb.Position)
	assert.Equal(t, 1, qb.Week)
	assert.InDelta(t, 38.0, qb.FantasyPoints, 1e-9)

	edge := rows[1]
	assert.Equal(t, league.DE, edge.Position)
	assert.InDelta(t, 3*2.0-0.5+7*0.2, edge.FantasyPoints, 1e-9)

	punter := rows[2]
	assert.Equal(t, league.PN, punter.Position)
	assert.InDelta(t, 4*-6.75+180*0.15, punter.FantasyPoints, 1e-9)
}

func TestLoadSeasonUsesCache(t *testing.T) {
	hits := 0
	loader, _ := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(statsCSV))
	})

	_, err := loader.LoadSeason(2023)
	require.NoError(t, err)
	_, err = loader.LoadSeason(2023)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestLoadSeasonServerError(t *testing.T) {
	loader, _ := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := loader.LoadSeason(1999)
	assert.Error(t, err)
}

func TestNormalizePositionAliases(t *testing.T) {
	cases := map[string]league.Position{
		"QB":   league.QB,
		"HB":   league.RB,
		"K":    league.PK,
		"P":    league.PN,
		"EDGE": league.DE,
		"ILB":  league.LB,
		"FS":   league.S,
		"DB":   league.CB,
	}
	for raw, want := range cases {
		got, ok := normalizePosition(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got)
	}

	_, ok := normalizePosition("LS")
	assert.False(t, ok)
}
