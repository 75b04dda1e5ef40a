package response

import "tablebook/internal/usecase/readmodel"

type CreateTable struct {
	ID int `json:"id"`
}

type TableList struct {
	Tables []readmodel.TableRM `json:"tables"`
}
