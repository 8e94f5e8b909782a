package handlers

import (
	"net/http"
	"time"

	"bookie/services/selection"
	"bookie/services/slots"
	"bookie/utils"

	"github.com/gin-gonic/gin"
)

// SelectionHandler exposes the slot selection flow of the room page.
type SelectionHandler struct {
	Service  selection.SelectionService
	Location *time.Location
	now      func() time.Time
}

func NewSelectionHandler(svc selection.SelectionService, loc *time.Location) *SelectionHandler {
	return &SelectionHandler{Service: svc, Location: loc, now: time.Now}
}

type startSelectionRequest struct {
	Room string `json:"room" binding:"required"`
	Date string `json:"date"` // YYYY-MM-DD, today when empty
}

type clickRequest struct {
	Slot *float64 `json:"slot" binding:"required"`
}

type changeDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *SelectionHandler) StartSelectionHandler(c *gin.Context) {
	var req startSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	now := h.now()
	day := slots.DayOf(now, h.Location)
	if req.Date != "" {
		parsed, err := slots.ParseDay(req.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		day = parsed
	}

	resp, err := h.Service.Start(c.Request.Context(), currentUser(c), req.Room, day, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SelectionHandler) GetSelectionHandler(c *gin.Context) {
	resp, err := h.Service.Get(c.Request.Context(), currentUser(c), c.Param("id"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SelectionHandler) ClickSlotHandler(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	resp, err := h.Service.Click(c.Request.Context(), currentUser(c), c.Param("id"), slots.Slot(*req.Slot), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SelectionHandler) ClearSelectionHandler(c *gin.Context) {
	resp, err := h.Service.Clear(c.Request.Context(), currentUser(c), c.Param("id"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SelectionHandler) ChangeDateHandler(c *gin.Context) {
	var req changeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	day, err := slots.ParseDay(req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	resp, err := h.Service.ChangeDay(c.Request.Context(), currentUser(c), c.Param("id"), day, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SelectionHandler) SubmitSelectionHandler(c *gin.Context) {
	b, err := h.Service.Submit(c.Request.Context(), currentUser(c), c.Param("id"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *SelectionHandler) CancelSelectionHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
