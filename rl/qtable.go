package rl

// QTable stores one value estimate per (state, action) pair.
// Unseen pairs read as the configured default.
type QTable struct {
	table map[string]map[string]float64
	def   float64
}

func NewQTable(def float64) *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
		def:   def,
	}
}

// Get returns the stored value or the default. Reads never mutate the table.
func (q *QTable) Get(state State, action Action) float64 {
	if actions, ok := q.table[state.Hash()]; ok {
		if val, ok := actions[action.Hash()]; ok {
			return val
		}
	}
	return q.def
}

// Set overwrites any prior value for the pair
func (q *QTable) Set(state State, action Action, val float64) {
	stateHash := state.Hash()
	if _, ok := q.table[stateHash]; !ok {
		q.table[stateHash] = make(map[string]float64)
	}
	q.table[stateHash][action.Hash()] = val
}

func (q *QTable) HasState(state State) bool {
	_, ok := q.table[state.Hash()]
	return ok
}

// Default returns the value reported for unseen pairs
func (q *QTable) Default() float64 {
	return q.def
}

// Reset discards all stored estimates
func (q *QTable) Reset() {
	q.table = make(map[string]map[string]float64)
}
