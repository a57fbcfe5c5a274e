package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	PROFILE_KEY           = "userProfile"
	SELECTED_CONTACTS_KEY = "selectedContacts"
)

// KVEntry is a single persisted value, the server-side equivalent of
// the app's on-device key/value storage.
type KVEntry struct {
	BaseModel
	Key   string `json:"key" gorm:"column:item_key;primarykey"`
	Value string `json:"value" gorm:"type:text"`
}

// GetItem returns the value stored under key and whether one exists
func GetItem(key string) (string, bool, error) {
	entry := KVEntry{}
	err := db.First(&entry, "item_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return entry.Value, true, nil
}

// SetItem overwrites whatever is stored under key
func SetItem(key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&KVEntry{Key: key, Value: value}).Error
}

func RemoveItem(key string) error {
	return db.Where("item_key = ?", key).Delete(&KVEntry{}).Error
}
