package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ResponseHandler defines the interface for handling response-related operations
type ResponseHandler interface {
	AddResponse(ctx *gin.Context)
	ListResponses(ctx *gin.Context)
	GetResponseCount(ctx *gin.Context)
	RemoveResponse(ctx *gin.Context)
	Learn(ctx *gin.Context)
}

type responseHandler struct {
	responseService statements.ResponseService
}

// NewResponseHandler creates a new ResponseHandler
func NewResponseHandler(responseService statements.ResponseService) ResponseHandler {
	return &responseHandler{
		responseService: responseService,
	}
}

// AddResponse handles the POST request to record a reply to a statement
// @Summary Record a response
// @Tags Response
// @Accept json
// @Produce json
// @Param id path string true "Statement ID"
// @Param requestBody body AddResponseRequest true "Reply"
// @Success 201 {object} ResponseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id}/responses [post]
func (handler *responseHandler) AddResponse(ctx *gin.Context) {
	statementID := ctx.Param("id")

	var request AddResponseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid response data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	response, err := handler.responseService.AddResponse(ctx, statementID, request.Text)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error adding response: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, newResponseResponse(response))
}

// ListResponses handles the GET request to list the responses of a statement
// @Summary List responses of a statement, most frequent first
// @Tags Response
// @Produce json
// @Param id path string true "Statement ID"
// @Param limit query int false "Limit the number of results"
// @Success 200 {array} ResponseResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id}/responses [get]
func (handler *responseHandler) ListResponses(ctx *gin.Context) {
	statementID := ctx.Param("id")

	limit := 0
	if value := ctx.Query("limit"); len(value) > 0 {
		limit = strutil.ConvertToInt(value)
	}

	responses, err := handler.responseService.ListResponses(ctx, statementID, limit)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error listing responses: %v", err.Error()))
		return
	}

	listResponse := []ResponseResponse{}
	for _, response := range responses {
		listResponse = append(listResponse, newResponseResponse(response))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetResponseCount handles the GET request to count how often a text followed a statement
// @Summary Count a response
// @Tags Response
// @Produce json
// @Param id path string true "Statement ID"
// @Param text query string true "Response text"
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id}/responses/count [get]
func (handler *responseHandler) GetResponseCount(ctx *gin.Context) {
	statementID := ctx.Param("id")

	text, ok := ctx.GetQuery("text")
	if !ok {
		abortWithError(ctx, http.StatusBadRequest, "query parameter text is required")
		return
	}

	count, err := handler.responseService.GetResponseCount(ctx, statementID, text)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error counting response: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Text: text, Occurrence: count})
}

// RemoveResponse handles the DELETE request to forget a reply of a statement
// @Summary Remove a response
// @Tags Response
// @Produce json
// @Param id path string true "Statement ID"
// @Param text query string true "Response text"
// @Success 200 {object} RemovedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id}/responses [delete]
func (handler *responseHandler) RemoveResponse(ctx *gin.Context) {
	statementID := ctx.Param("id")

	text, ok := ctx.GetQuery("text")
	if !ok {
		abortWithError(ctx, http.StatusBadRequest, "query parameter text is required")
		return
	}

	removed, err := handler.responseService.RemoveResponse(ctx, statementID, text)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error removing response: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, RemovedResponse{Text: text, Removed: removed})
}

// Learn handles the POST request to record a statement and the reply that followed it
// @Summary Learn a dialog turn
// @Tags Response
// @Accept json
// @Produce json
// @Param requestBody body LearnRequest true "Statement and reply"
// @Success 201 {object} ResponseResponse
// @Failure 400 {object} ErrorResponse
// @Router /dialogs [post]
func (handler *responseHandler) Learn(ctx *gin.Context) {
	var request LearnRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid dialog data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	response, err := handler.responseService.Learn(ctx, request.Statement, request.Response)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error learning dialog: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, newResponseResponse(response))
}
