package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// CreateStatementRequest is the body of POST /statements
type CreateStatementRequest struct {
	Text      string                 `json:"text" validate:"notblank,max=255"`
	ExtraData map[string]interface{} `json:"extra_data,omitempty" validate:"extradata"`
}

// Validate for validating CreateStatementRequest struct
func (r *CreateStatementRequest) Validate() error {
	return validateRequest(r)
}

// AddExtraDataRequest is the body of PUT /statements/:id/extra-data
type AddExtraDataRequest struct {
	Key   string      `json:"key" validate:"notblank,max=255"`
	Value interface{} `json:"value"`
}

// Validate for validating AddExtraDataRequest struct
func (r *AddExtraDataRequest) Validate() error {
	return validateRequest(r)
}

// AddResponseRequest is the body of POST /statements/:id/responses
type AddResponseRequest struct {
	Text string `json:"text" validate:"notblank,max=255"`
}

// Validate for validating AddResponseRequest struct
func (r *AddResponseRequest) Validate() error {
	return validateRequest(r)
}

// LearnRequest is the body of POST /dialogs
type LearnRequest struct {
	Statement string `json:"statement" validate:"notblank,max=255"`
	Response  string `json:"response" validate:"notblank,max=255"`
}

// Validate for validating LearnRequest struct
func (r *LearnRequest) Validate() error {
	return validateRequest(r)
}

// StatementResponse represents a statement together with its responses
type StatementResponse struct {
	ID              string                 `json:"id"`
	Text            string                 `json:"text"`
	ExtraData       map[string]interface{} `json:"extra_data"`
	InResponseTo    []ResponseResponse     `json:"in_response_to"`
	DateTimeCreated time.Time              `json:"date_time_created"`
}

// ResponseResponse represents a single response edge
type ResponseResponse struct {
	ID            string `json:"id"`
	StatementID   string `json:"statement_id"`
	ResponseID    string `json:"response_id"`
	StatementText string `json:"statement_text"`
	ResponseText  string `json:"response_text"`
	Occurrence    uint   `json:"occurrence"`
}

// CountResponse reports how often a text followed a statement
type CountResponse struct {
	Text       string `json:"text"`
	Occurrence uint   `json:"occurrence"`
}

// RemovedResponse reports whether DELETE /statements/:id/responses removed an edge
type RemovedResponse struct {
	Text    string `json:"text"`
	Removed bool   `json:"removed"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func newStatementResponse(statement *statements.Statement) StatementResponse {
	extraData := statement.ExtraData
	if extraData == nil {
		extraData = map[string]interface{}{}
	}

	responses := make([]ResponseResponse, 0, len(statement.InResponseTo))
	for _, response := range statement.InResponseTo {
		responses = append(responses, newResponseResponse(response))
	}

	return StatementResponse{
		ID:              statement.ID,
		Text:            statement.Text,
		ExtraData:       extraData,
		InResponseTo:    responses,
		DateTimeCreated: statement.DateTimeCreated,
	}
}

func newResponseResponse(response *statements.Response) ResponseResponse {
	return ResponseResponse{
		ID:            response.ID,
		StatementID:   response.StatementID,
		ResponseID:    response.ResponseID,
		StatementText: response.StatementText,
		ResponseText:  response.ResponseText,
		Occurrence:    response.Occurrence,
	}
}

func validateRequest(request interface{}) error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%v", messages)
		}
		return err
	}
	return nil
}
