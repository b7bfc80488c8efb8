package domain

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle pairs a carved board with the full solution it was cut from.
type Puzzle struct {
	Seed      int64       `json:"seed,omitempty"`
	Board     Board       `json:"board"`
	Solution  [9][9]uint8 `json:"solution"`
	Givens    int         `json:"givens"`
	CreatedAt int64       `json:"createdAt,omitempty"`
}
