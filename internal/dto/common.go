package dto

// PaginationQuery binds the standard page/pageSize query parameters.
type PaginationQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize,default=20" binding:"omitempty,min=1,max=100"`
}

// LimitOffset converts the 1-based page parameters to a limit/offset pair.
func (p PaginationQuery) LimitOffset() (int, int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = 20
	}
	return size, (page - 1) * size
}

// ResponseMessage is the generic acknowledgement payload.
type ResponseMessage struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
