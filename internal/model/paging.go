package model

const DefaultPageSize = 20

// Paging is an offset window. Size 0 means unbounded.
type Paging struct {
	From int
	Size int
}

// Limit returns the SQL LIMIT, 0 when unbounded.
func (p Paging) Limit() int {
	if p.Size <= 0 {
		return 0
	}
	return p.Size
}

// Offset returns the SQL OFFSET.
func (p Paging) Offset() int {
	if p.From < 0 {
		return 0
	}
	return p.From
}
