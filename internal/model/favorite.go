package model

const (
	FavoriteTool   = "tool"
	FavoriteBundle = "bundle"
)

// swagger:model UserFavorite
type UserFavorite struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	ItemID   uint   `gorm:"not null" json:"itemId"`
	ItemType string `gorm:"size:10;not null" json:"itemType"` // tool / bundle
	ItemName string `gorm:"size:255;not null" json:"itemName"`
}

func (UserFavorite) TableName() string {
	return "user_favorites"
}
