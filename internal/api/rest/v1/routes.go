package v1

import (
	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	statementService statements.StatementService,
	responseService statements.ResponseService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Statements Routes
	statementHandler := NewStatementHandler(statementService)
	v1.POST("/statements", statementHandler.Create)
	v1.GET("/statements", statementHandler.List)
	v1.GET("/statements/:id", statementHandler.GetByID)
	v1.GET("/statements/:id/serialized", statementHandler.Serialize)
	v1.PUT("/statements/:id/extra-data", statementHandler.AddExtraData)
	v1.DELETE("/statements/:id", statementHandler.DeleteByID)

	// Responses Routes
	responseHandler := NewResponseHandler(responseService)
	v1.POST("/statements/:id/responses", responseHandler.AddResponse)
	v1.GET("/statements/:id/responses", responseHandler.ListResponses)
	v1.GET("/statements/:id/responses/count", responseHandler.GetResponseCount)
	v1.DELETE("/statements/:id/responses", responseHandler.RemoveResponse)
	v1.POST("/dialogs", responseHandler.Learn)
}
