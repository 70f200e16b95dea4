package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/validators"
	"gorm.io/datatypes"
)

// StatementModel is the GORM database model for statements (infrastructure concern)
type StatementModel struct {
	ID              string         `gorm:"primaryKey;type:uuid"`
	Text            string         `gorm:"not null;uniqueIndex;type:varchar(255)"`
	ExtraData       datatypes.JSON `gorm:"not null"`
	DateTimeCreated time.Time      `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (StatementModel) TableName() string {
	return "statements"
}

// ToDomain converts GORM model to domain entity. Response edges are loaded separately.
func (m *StatementModel) ToDomain() (*statements.Statement, error) {
	extraData := map[string]interface{}{}
	if len(m.ExtraData) > 0 {
		if err := json.Unmarshal(m.ExtraData, &extraData); err != nil {
			return nil, fmt.Errorf("failed to decode extra data of statement %s: %w", m.ID, err)
		}
	}

	return &statements.Statement{
		ID:              m.ID,
		Text:            m.Text,
		ExtraData:       extraData,
		DateTimeCreated: m.DateTimeCreated,
	}, nil
}

// FromDomain converts domain entity to GORM model
func (m *StatementModel) FromDomain(s *statements.Statement) error {
	extraData := s.ExtraData
	if extraData == nil {
		extraData = map[string]interface{}{}
	}

	encoded, err := validators.EncodeExtraData(extraData)
	if err != nil {
		return fmt.Errorf("failed to encode extra data of statement %s: %w", s.ID, err)
	}

	m.ID = s.ID
	m.Text = s.Text
	m.ExtraData = datatypes.JSON(encoded)
	m.DateTimeCreated = s.DateTimeCreated.UTC()
	return nil
}
