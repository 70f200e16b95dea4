package statements

import (
	"strings"
	"time"

	"github.com/MGTheTrain/dialog-memory/internal/pkg/strutil"
	"github.com/google/uuid"
)

// MaxTextLength is the longest statement text, in characters.
const MaxTextLength = 255

const (
	displayTextLimit = 60
	emptyDisplayText = "<empty>"
)

// Statement entity
type Statement struct {
	ID              string                 `validate:"required,uuid4"`
	Text            string                 `validate:"notblank,max=255"`
	ExtraData       map[string]interface{} `validate:"extradata"`
	InResponseTo    []*Response            `validate:"-"`
	DateTimeCreated time.Time              `validate:"required"`
}

// SerializedStatement is the dictionary representation of a statement
type SerializedStatement struct {
	Text         string                 `json:"text"`
	InResponseTo []SerializedResponse   `json:"in_response_to"`
	ExtraData    map[string]interface{} `json:"extra_data"`
}

// NewStatement returns a statement with a fresh ID and creation time
func NewStatement(text string) *Statement {
	return &Statement{
		ID:              uuid.NewString(),
		Text:            text,
		ExtraData:       map[string]interface{}{},
		DateTimeCreated: time.Now().UTC(),
	}
}

// Validate for validating Statement struct
func (s *Statement) Validate() error {
	return validateStruct(s)
}

// String returns the text shortened for display, or <empty> for blank text.
func (s *Statement) String() string {
	trimmed := []rune(strings.TrimSpace(s.Text))
	switch {
	case len(trimmed) > displayTextLimit:
		return string([]rune(s.Text)[:displayTextLimit-3]) + "..."
	case len(trimmed) > 0:
		return s.Text
	default:
		return emptyDisplayText
	}
}

// AddExtraData sets key in the statement's extra data.
func (s *Statement) AddExtraData(key string, value interface{}) {
	if s.ExtraData == nil {
		s.ExtraData = map[string]interface{}{}
	}
	s.ExtraData[key] = value
}

// GetResponseCount returns how often the response with the given text followed this
// statement, considering only the loaded InResponseTo edges. Unknown responses count 0.
func (s *Statement) GetResponseCount(responseText string) uint {
	for _, response := range s.InResponseTo {
		if response.ResponseText == responseText {
			return response.Occurrence
		}
	}
	return 0
}

// Serialize returns the dictionary representation of the statement and its responses.
func (s *Statement) Serialize() *SerializedStatement {
	extraData := make(map[string]interface{}, len(s.ExtraData))
	for k, v := range s.ExtraData {
		extraData[k] = v
	}

	responses := make([]SerializedResponse, 0, len(s.InResponseTo))
	for _, response := range s.InResponseTo {
		responses = append(responses, response.Serialize())
	}

	return &SerializedStatement{
		Text:         s.Text,
		InResponseTo: responses,
		ExtraData:    extraData,
	}
}

// Response entity: the statement identified by ResponseID was observed
// Occurrence times as a reply to the statement identified by StatementID.
type Response struct {
	ID            string `validate:"required,uuid4"`
	StatementID   string `validate:"required,uuid4"`
	ResponseID    string `validate:"required,uuid4"`
	StatementText string `validate:"-"`
	ResponseText  string `validate:"-"`
	Occurrence    uint   `validate:"min=1"`
}

// SerializedResponse is the dictionary representation of a response
type SerializedResponse struct {
	Text       string `json:"text"`
	Occurrence uint   `json:"occurrence"`
}

// NewResponse returns a first occurrence of response after statement
func NewResponse(statementID, responseID string) *Response {
	return &Response{
		ID:          uuid.NewString(),
		StatementID: statementID,
		ResponseID:  responseID,
		Occurrence:  1,
	}
}

// Validate for validating Response struct
func (r *Response) Validate() error {
	return validateStruct(r)
}

// String renders the edge as "statement => response" with both sides shortened.
func (r *Response) String() string {
	return strutil.Truncate(r.StatementText, 20, 17) + " => " + strutil.Truncate(r.ResponseText, 40, 37)
}

// Serialize returns the dictionary representation of the response.
func (r *Response) Serialize() SerializedResponse {
	return SerializedResponse{
		Text:       r.ResponseText,
		Occurrence: r.Occurrence,
	}
}
