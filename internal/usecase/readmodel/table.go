package readmodel

// TableRM mirrors the wire shape of a catalog entry.
type TableRM struct {
	ID       int  `json:"id"`
	Number   int  `json:"number"`
	Places   int  `json:"places"`
	IsVip    bool `json:"isVip"`
	MinOrder *int `json:"minOrder,omitempty"`
}
