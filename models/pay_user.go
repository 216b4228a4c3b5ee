package models

import "time"

// PayUser records a payment independent of any booking.
type PayUser struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"type:varchar(255)"`
	Email         string  `json:"email" gorm:"type:varchar(255)"`
	Phone         string  `json:"phone" gorm:"type:varchar(50)"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method" gorm:"type:varchar(50)"`
	CreatedAt     time.Time
}
