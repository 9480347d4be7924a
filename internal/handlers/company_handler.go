package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/auth"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
	Calendar  *services.CalendarService
}

func NewCompanyHandler(companies *services.CompanyService, calendar *services.CalendarService) *CompanyHandler {
	return &CompanyHandler{Companies: companies, Calendar: calendar}
}

// Dashboard is GET /dashboard: the caller's companies plus the aggregated
// calendar events.
func (h *CompanyHandler) Dashboard(c *gin.Context) {
	userID := auth.CurrentUserID(c)
	companies, err := h.Companies.List(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	events, err := h.Calendar.Aggregate(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies, "events": events})
}

// CreateCompany is POST /dashboard.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	company, err := h.Companies.Create(auth.CurrentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// Detail is GET /company/:id.
func (h *CompanyHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.Companies.Detail(auth.CurrentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Edit is POST /company/:id/edit.
func (h *CompanyHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	company, err := h.Companies.Update(auth.CurrentUserID(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete is POST /company/:id/delete. The cascade takes the company's
// interviews, tasks, documents and memos with it.
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Companies.Delete(auth.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
