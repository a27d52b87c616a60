package v1

import (
	"net/http"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/report"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidate")
	{
		candidates.POST("/create", handler.Create)
		candidates.GET("/get/:id", handler.Get)
		candidates.PUT("/update/:id", handler.Update)
		candidates.DELETE("/delete/:id", handler.Delete)
		candidates.POST("/all-candidates", handler.Search)
		candidates.GET("/generate-csv-report", handler.GenerateReport)
	}
}

type CreateCandidateResponse struct {
	Message string `json:"message"`
	UUID    string `json:"uuid"`
}

type ReportResponse struct {
	Message   string   `json:"message"`
	File      string   `json:"file"`
	Rows      int      `json:"rows"`
	Locations []string `json:"locations,omitempty"`
}

// Create godoc
// @Summary      Create candidate
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        candidate  body      domain.Candidate  true  "Candidate"
// @Success      200  {object}  CreateCandidateResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      422  {object}  response.ErrorBody
// @Router       /candidate/create [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req domain.Candidate
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.candidateUC.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, CreateCandidateResponse{Message: domain.MsgCandidateRegistered, UUID: id})
}

// Get godoc
// @Summary      Get candidate
// @Tags         candidate
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate UUID"
// @Success      200  {object}  domain.Candidate
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidate/get/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Update godoc
// @Summary      Update candidate
// @Description  Partial update; only provided fields change. Email and uuid are immutable.
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string                  true  "Candidate UUID"
// @Param        candidate  body      domain.CandidateUpdate  true  "Fields to change"
// @Success      200  {object}  domain.Candidate
// @Failure      404  {object}  response.ErrorBody
// @Failure      422  {object}  response.ErrorBody
// @Router       /candidate/update/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	var req domain.CandidateUpdate
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Delete godoc
// @Summary      Delete candidate
// @Tags         candidate
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate UUID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidate/delete/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, domain.MsgRecordDeleted)
}

// Search godoc
// @Summary      Search candidates
// @Description  Exact match on every provided field. An empty body lists all candidates.
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        filter  body      domain.CandidateFilter  false  "Filter"
// @Success      200  {array}   domain.Candidate
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidate/all-candidates [post]
func (h *CandidateHandler) Search(c *gin.Context) {
	var filter domain.CandidateFilter
	if c.Request.ContentLength != 0 {
		if !bindJSON(c, &filter) {
			return
		}
	}

	candidates, err := h.candidateUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidates)
}

// GenerateReport godoc
// @Summary      Export candidates
// @Description  Writes every candidate to a timestamped report file
// @Tags         candidate
// @Produce      json
// @Security     BearerAuth
// @Param        format  query     string  false  "csv (default) or xlsx"
// @Success      200  {object}  ReportResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidate/generate-csv-report [get]
func (h *CandidateHandler) GenerateReport(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		c.Error(apperror.Validation(domain.MsgValidationFailed, []string{"format: Must be one of: csv, xlsx"}))
		return
	}

	rep, err := h.candidateUC.GenerateReport(c.Request.Context(), format)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, ReportResponse{
		Message:   domain.MsgSuccess,
		File:      rep.Name,
		Rows:      rep.Rows,
		Locations: rep.Locations,
	})
}
