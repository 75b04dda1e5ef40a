package booking

import "errors"

var (
	ErrInvalidTableID     = errors.New("table id must be positive")
	ErrInvalidTableNumber = errors.New("table number must be positive")
	ErrInvalidPlaces      = errors.New("places must be positive")
	ErrNegativeMinOrder   = errors.New("minimum order cannot be negative")
)

// Table is a bookable unit in the catalog. ID is the administrative
// identity; Number is the key reservations reference. The two are related
// but distinct and must not be conflated.
type Table struct {
	id       int
	number   int
	places   int
	isVip    bool
	minOrder *int
}

func NewTable(id, number, places int, isVip bool, minOrder *int) (*Table, error) {
	if id <= 0 {
		return nil, ErrInvalidTableID
	}
	if number <= 0 {
		return nil, ErrInvalidTableNumber
	}
	if places <= 0 {
		return nil, ErrInvalidPlaces
	}
	if minOrder != nil && *minOrder < 0 {
		return nil, ErrNegativeMinOrder
	}
	return &Table{
		id:       id,
		number:   number,
		places:   places,
		isVip:    isVip,
		minOrder: minOrder,
	}, nil
}

func (t *Table) ID() int        { return t.id }
func (t *Table) Number() int    { return t.number }
func (t *Table) Places() int    { return t.places }
func (t *Table) IsVip() bool    { return t.isVip }
func (t *Table) MinOrder() *int { return t.minOrder }
