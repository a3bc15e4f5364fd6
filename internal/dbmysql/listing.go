package dbmysql

import (
	"time"
)

// Listing is a for-sale item record. Photos are inlined as base64 data
// URIs in image_url, so the column has to be LONGTEXT. Listings are
// never updated or deleted once created.
type Listing struct {
	ID          string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Category    string    `gorm:"column:category;size:50;index;not null" json:"category"`
	Price       float64   `gorm:"column:price;not null" json:"price"`
	Location    string    `gorm:"column:location;size:255" json:"location"`
	SellerEmail string    `gorm:"column:seller_email;size:255;not null" json:"seller_email"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImageURL    *string   `gorm:"column:image_url;type:longtext" json:"image_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
