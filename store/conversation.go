package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/helpmate/helpmate-api/schema"
)

func getConversation(db *gorm.DB, conversationID uuid.UUID) (*schema.Conversation, error) {
	var c schema.Conversation
	if err := db.Where("id = ?", conversationID).First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetConversation returns a conversation to one of its two participants.
func (s *MarketStore) GetConversation(accountNumber string, conversationID uuid.UUID) (*schema.Conversation, error) {
	c, err := getConversation(s.ormDB, conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(accountNumber) {
		return nil, ErrNotParticipant
	}
	return c, nil
}
