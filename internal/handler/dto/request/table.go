package request

// CreateTable deliberately carries no binding tags: field-level
// validation lives in the usecase layer so both transports report
// identical messages.
type CreateTable struct {
	ID       int  `json:"id"`
	Number   int  `json:"number"`
	Places   int  `json:"places"`
	IsVip    bool `json:"isVip"`
	MinOrder *int `json:"minOrder,omitempty"`
}
