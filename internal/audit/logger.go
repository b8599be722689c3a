package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/queueworks/queue-booking-api/internal/models"
)

// Sink persists audit events. The gorm-backed Logger is the production sink.
type Sink interface {
	Log(actorID *string, action, entity string, entityID *string, metadata any) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	actorID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
