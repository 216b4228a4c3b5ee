package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is an ordered list of item names persisted as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

type Booking struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"type:varchar(255);not null"`
	Email     string     `json:"email" gorm:"type:varchar(255);not null"`
	Phone     string     `json:"phone" gorm:"type:varchar(50);not null"`
	Guests    int        `json:"guests" gorm:"not null"`
	Date      string     `json:"date" gorm:"type:varchar(20);not null"`
	Time      string     `json:"time" gorm:"type:varchar(20);not null"`
	Message   string     `json:"message" gorm:"type:text"`
	Preorder  StringList `json:"preorder" gorm:"type:text"`
	CreatedAt time.Time
}
