package httpadapter

import (
	"net/http"

	"github.com/gorilla/websocket"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type watchReq struct {
	Board [9][9]uint8 `json:"board"`
}

// watchStep is one streamed search event; value 0 is a retraction.
type watchStep struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

type watchDone struct {
	Done       bool        `json:"done"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	Nodes      int         `json:"nodes"`
	DurationMs int64       `json:"durationMs"`
	Error      string      `json:"error,omitempty"`
}

// handleWatch upgrades to a websocket, reads one board, and streams
// every placement and retraction of the backtracking search before a
// final frame with the outcome.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req watchReq
	if err := conn.ReadJSON(&req); err != nil {
		return
	}

	ss, ok := h.UC.Solver.(ports.StepSolver)
	if !ok {
		_ = conn.WriteJSON(watchDone{Error: "configured solver does not stream"})
		return
	}

	b := &domain.Board{Values: req.Board}
	dead := false
	out, st, err := ss.SolveTrace(r.Context(), b, func(row, col int, v uint8) {
		if dead {
			return
		}
		if werr := conn.WriteJSON(watchStep{Row: row, Col: col, Value: v}); werr != nil {
			dead = true
		}
	})

	done := watchDone{Done: err == nil, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()}
	if err != nil {
		done.Error = err.Error()
	} else {
		done.Board = out.Values
	}
	_ = conn.WriteJSON(done)
}
