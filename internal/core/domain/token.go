package domain

// TokenID identifies a number token by where it starts. Two tokens can share
// a value, never a TokenID.
type TokenID struct {
	Row   int `json:"row"`
	Start int `json:"start"`
}

// NumberToken is a maximal horizontal run of digits within a single row.
type NumberToken struct {
	// Value is the decimal value of the run.
	Value int `json:"value"`

	// Row is the row the run lives in.
	Row int `json:"row"`

	// Start is the inclusive first column of the run.
	Start int `json:"start"`

	// End is the inclusive last column of the run.
	End int `json:"end"`
}

// ID returns the token's identity.
func (t NumberToken) ID() TokenID {
	return TokenID{Row: t.Row, Start: t.Start}
}

// Gear is a gear cell meshing exactly two distinct number tokens.
type Gear struct {
	// Cell is the gear's position.
	Cell Coord `json:"cell"`

	// Tokens are the two meshed tokens in scan order.
	Tokens [2]NumberToken `json:"tokens"`
}

// Ratio returns the product of the two meshed token values.
func (g Gear) Ratio() int {
	return g.Tokens[0].Value * g.Tokens[1].Value
}
