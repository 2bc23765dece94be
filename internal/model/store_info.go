package model

import (
	"time"
)

// StoreInfo 콘텐츠 생성에 쓰이는 매장/상품 프로필
type StoreInfo struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	StoreName   string    `gorm:"size:100;not null" json:"store_name"`
	ProductName string    `gorm:"size:100" json:"product_name"`
	Keywords    string    `gorm:"size:500" json:"keywords"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"size:200" json:"address"`
	Phone       string    `gorm:"size:30" json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (StoreInfo) TableName() string {
	return "store_infos"
}
