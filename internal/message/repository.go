package message

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/dbmysql"
)

// Repository is the messages table access layer. Messages are write-only
// for the application, so Create is the whole surface.
type Repository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *dbmysql.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(msg).Error
}
