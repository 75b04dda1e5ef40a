package api

import (
	"net/http"
	"strconv"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type TablesHandler struct {
	tablesUseCase usecase.TablesUseCase
}

func NewTablesHandler(tablesUseCase usecase.TablesUseCase) *TablesHandler {
	return &TablesHandler{tablesUseCase: tablesUseCase}
}

func (h *TablesHandler) List(c *gin.Context) {
	tables, err := h.tablesUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]readmodel.TableRM, 0, len(tables))
	for _, t := range tables {
		out = append(out, *t)
	}
	c.JSON(http.StatusOK, resdto.TableList{Tables: out})
}

func (h *TablesHandler) Create(c *gin.Context) {
	var req reqdto.CreateTable
	if !bindJSON(c, &req) {
		return
	}

	params := usecase.CreateTableParams{
		ID:       req.ID,
		Number:   req.Number,
		Places:   req.Places,
		IsVip:    req.IsVip,
		MinOrder: req.MinOrder,
	}

	id, err := h.tablesUseCase.Create(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CreateTable{ID: id})
}

func (h *TablesHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Table number must be an integer")
		return
	}

	table, err := h.tablesUseCase.GetByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}
