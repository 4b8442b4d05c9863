package handlers

import (
	"net/http"

	"finalprojectapi/services/reservation"
	"finalprojectapi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TableHandler serves the table registry and availability lookups.
type TableHandler struct {
	Service reservation.ReservationService
}

func NewTableHandler(svc reservation.ReservationService) *TableHandler {
	return &TableHandler{Service: svc}
}

func (h *TableHandler) ListTablesHandler(c *gin.Context) {
	tables, err := h.Service.ListTables(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) GetTableHandler(c *gin.Context) {
	table, err := h.Service.GetTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// AvailableTablesHandler handles GET /tables/available?capacity&date&time.
func (h *TableHandler) AvailableTablesHandler(c *gin.Context) {
	capacity, ok := reservation.ParseCapacity(c.Query("capacity"))
	q := reservation.AvailabilityQuery{
		Capacity:  capacity,
		MatchNone: !ok,
		Date:      c.Query("date"),
		Time:      c.Query("time"),
	}
	if !ok {
		getLogger(c).Debug("Capacity is not a number, no table can match",
			zap.String("capacity", c.Query("capacity")))
	}
	if (q.Date == "") != (q.Time == "") {
		getLogger(c).Debug("Partial slot given, reservations not considered",
			zap.String("date", q.Date), zap.String("time", q.Time))
	}

	tables, err := h.Service.ResolveAvailable(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}
