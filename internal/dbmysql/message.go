package dbmysql

import (
	"time"
)

// Message is a buyer-to-seller inquiry tied to one listing. listing_id
// is a plain reference, not an enforced foreign key. Rows are terminal:
// written once, never read back by the application.
type Message struct {
	ID          string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	ListingID   string    `gorm:"column:listing_id;index;size:36" json:"listing_id"`
	BuyerEmail  string    `gorm:"column:buyer_email;size:255;not null" json:"buyer_email"`
	SellerEmail string    `gorm:"column:seller_email;size:255;not null" json:"seller_email"`
	Body        string    `gorm:"column:message;type:text" json:"message"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
