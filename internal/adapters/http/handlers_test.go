package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktracking(),
		generator.NewRandom(generator.DefaultRemovals),
		validator.New(),
		hint.NewSingles(),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body, out any) int {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: sample}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Error)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, resp.Board[r][c], "cell (%d,%d)", r, c)
		}
	}
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	srv := newTestServer(t)

	var g [9][9]uint8
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9

	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: g}, &resp)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotEmpty(t, resp.Error)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp generateResp
	code := postJSON(t, srv.URL+"/api/generate", generateReq{Seed: 11}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 11, resp.Seed)
	require.Positive(t, resp.Givens)

	givens := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.Board.Values[r][c] != 0 {
				givens++
			}
		}
	}
	require.Equal(t, givens, resp.Givens)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var g [9][9]uint8
	g[0][0], g[0][5] = 7, 7

	var resp validateResp
	code := postJSON(t, srv.URL+"/api/validate", validateReq{Board: g}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.False(t, resp.OK)
	require.Len(t, resp.Conflicts, 1)
}

func TestWatchEndpointStreamsSteps(t *testing.T) {
	srv := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/watch"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Nearly complete board keeps the stream short.
	board := sampleSolved
	board[0][0], board[4][4], board[8][8] = 0, 0, 0
	require.NoError(t, conn.WriteJSON(watchReq{Board: board}))

	type frame struct {
		Done  *bool       `json:"done"`
		Row   int         `json:"row"`
		Col   int         `json:"col"`
		Value uint8       `json:"value"`
		Board [9][9]uint8 `json:"board"`
		Error string      `json:"error"`
	}

	steps := 0
	for {
		var f frame
		require.NoError(t, conn.ReadJSON(&f))
		if f.Done == nil {
			steps++
			continue
		}
		require.True(t, *f.Done, "stream ended in error: %s", f.Error)
		require.Equal(t, sampleSolved, f.Board)
		break
	}
	require.Equal(t, 3, steps, "three blanks, no backtracking needed")
}

var sampleSolved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}
