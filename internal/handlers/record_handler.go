package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/auth"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
)

// RecordHandler covers the four child record types. The add routes hang
// off a company (/company/:id/task/add); edit, delete and toggle address
// the record itself (/task/:id/toggle).
type RecordHandler struct {
	Interviews *services.InterviewService
	Tasks      *services.TaskService
	Documents  *services.DocumentService
	Memos      *services.MemoService
}

func NewRecordHandler(
	interviews *services.InterviewService,
	tasks *services.TaskService,
	documents *services.DocumentService,
	memos *services.MemoService,
) *RecordHandler {
	return &RecordHandler{
		Interviews: interviews,
		Tasks:      tasks,
		Documents:  documents,
		Memos:      memos,
	}
}

func (h *RecordHandler) AddInterview(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	interview, err := h.Interviews.Create(auth.CurrentUserID(c), companyID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *RecordHandler) EditInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	interview, err := h.Interviews.Update(auth.CurrentUserID(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *RecordHandler) DeleteInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Interviews.Delete(auth.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *RecordHandler) AddTask(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	task, err := h.Tasks.Create(auth.CurrentUserID(c), &companyID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *RecordHandler) EditTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	task, err := h.Tasks.Update(auth.CurrentUserID(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleTask is POST /task/:id/toggle. The response carries company_id so
// the client can navigate back to the detail view.
func (h *RecordHandler) ToggleTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.Tasks.Toggle(auth.CurrentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": task.ID, "status": task.Status, "company_id": task.CompanyID})
}

func (h *RecordHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Tasks.Delete(auth.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *RecordHandler) AddDocument(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	doc, err := h.Documents.Create(auth.CurrentUserID(c), &companyID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *RecordHandler) EditDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	doc, err := h.Documents.Update(auth.CurrentUserID(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *RecordHandler) DeleteDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Documents.Delete(auth.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *RecordHandler) AddMemo(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	memo, err := h.Memos.Create(auth.CurrentUserID(c), &companyID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, memo)
}

func (h *RecordHandler) EditMemo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	memo, err := h.Memos.Update(auth.CurrentUserID(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, memo)
}

func (h *RecordHandler) DeleteMemo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Memos.Delete(auth.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
