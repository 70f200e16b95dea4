package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// StatementHandler defines the interface for handling statement-related operations
type StatementHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Serialize(ctx *gin.Context)
	AddExtraData(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type statementHandler struct {
	statementService statements.StatementService
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(statementService statements.StatementService) StatementHandler {
	return &statementHandler{
		statementService: statementService,
	}
}

// Create handles the POST request to record a statement
// @Summary Record a statement
// @Tags Statement
// @Accept json
// @Produce json
// @Param requestBody body CreateStatementRequest true "Statement"
// @Success 201 {object} StatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /statements [post]
func (handler *statementHandler) Create(ctx *gin.Context) {
	var request CreateStatementRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid statement data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	statement, err := handler.statementService.Create(ctx, request.Text, request.ExtraData)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error creating statement: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, newStatementResponse(statement))
}

// List handles the GET request to list statements with optional query parameters
// @Summary List statements based on query parameters
// @Tags Statement
// @Produce json
// @Param text query string false "Substring of the statement text"
// @Param dateTimeCreated query string false "Statement Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by text or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} StatementResponse
// @Failure 400 {object} ErrorResponse
// @Router /statements [get]
func (handler *statementHandler) List(ctx *gin.Context) {
	query := statements.NewStatementQuery()

	if text := ctx.Query("text"); len(text) > 0 {
		query.Text = text
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid dateTimeCreated: %v", err.Error()))
			return
		}
		query.DateTimeCreated = parsedTime
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result, err := handler.statementService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("list query failed: %v", err.Error()))
		return
	}

	listResponse := []StatementResponse{}
	for _, statement := range result {
		listResponse = append(listResponse, newStatementResponse(statement))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a statement and its responses by ID
// @Summary Retrieve a statement by ID
// @Tags Statement
// @Produce json
// @Param id path string true "Statement ID"
// @Success 200 {object} StatementResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id} [get]
func (handler *statementHandler) GetByID(ctx *gin.Context) {
	statementID := ctx.Param("id")

	statement, err := handler.statementService.GetByID(ctx, statementID)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error retrieving statement with id %s: %v", statementID, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, newStatementResponse(statement))
}

// Serialize handles the GET request to retrieve the dictionary representation of a statement
// @Summary Serialize a statement
// @Tags Statement
// @Produce json
// @Param id path string true "Statement ID"
// @Success 200 {object} statements.SerializedStatement
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id}/serialized [get]
func (handler *statementHandler) Serialize(ctx *gin.Context) {
	statementID := ctx.Param("id")

	serialized, err := handler.statementService.Serialize(ctx, statementID)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error serializing statement with id %s: %v", statementID, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, serialized)
}

// AddExtraData handles the PUT request to set a single extra data entry of a statement
// @Summary Set extra data of a statement
// @Tags Statement
// @Accept json
// @Produce json
// @Param id path string true "Statement ID"
// @Param requestBody body AddExtraDataRequest true "Extra data entry"
// @Success 200 {object} StatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id}/extra-data [put]
func (handler *statementHandler) AddExtraData(ctx *gin.Context) {
	statementID := ctx.Param("id")

	var request AddExtraDataRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid extra data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	statement, err := handler.statementService.AddExtraData(ctx, statementID, request.Key, request.Value)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error updating statement with id %s: %v", statementID, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, newStatementResponse(statement))
}

// DeleteByID handles the DELETE request to delete a statement and its responses by ID
// @Summary Delete a statement by ID
// @Tags Statement
// @Produce json
// @Param id path string true "Statement ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /statements/{id} [delete]
func (handler *statementHandler) DeleteByID(ctx *gin.Context) {
	statementID := ctx.Param("id")

	if err := handler.statementService.DeleteByID(ctx, statementID); err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error deleting statement with id %s", statementID))
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted statement with id %s", statementID)})
}
