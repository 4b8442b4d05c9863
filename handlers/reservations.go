package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"finalprojectapi/services/reservation"
	"finalprojectapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// ReservationHandler serves reservation listing, creation and deletion.
type ReservationHandler struct {
	Service reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	// Payload numbers arrive as json.Number so integers survive the bind.
	binding.EnableDecoderUseNumber = true
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	list, err := h.Service.ListReservations(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateReservationHandler stores whatever JSON object the client sent.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	payload, err := bindObject(c)
	if err != nil {
		utils.JSONError(c, utils.InvalidParameter("Request body must be a JSON object", err))
		return
	}

	created, err := h.Service.CreateReservation(c.Request.Context(), payload)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	getLogger(c).Info("Reservation created", zap.String("id", created.ID))
	c.JSON(http.StatusCreated, created)
}

// DeleteReservationHandler always answers success unless the store fails.
func (h *ReservationHandler) DeleteReservationHandler(c *gin.Context) {
	if err := h.Service.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bindObject binds a JSON object body. An empty body is an empty object.
// Integral numbers become int64 so they are stored as integers.
func bindObject(c *gin.Context) (map[string]interface{}, error) {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return map[string]interface{}{}, nil
	}
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]interface{}{}, nil
		}
		return nil, err
	}
	if payload == nil {
		return nil, errors.New("body is null")
	}
	return normalizeNumbers(payload).(map[string]interface{}), nil
}

func normalizeNumbers(v interface{}) interface{} {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, _ := x.Float64()
		return f
	case map[string]interface{}:
		for k, val := range x {
			x[k] = normalizeNumbers(val)
		}
		return x
	case []interface{}:
		for i, val := range x {
			x[i] = normalizeNumbers(val)
		}
		return x
	}
	return v
}
