package models

import (
	"time"
)

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Phone         string    `gorm:"size:15;unique;not null" json:"phone"`
	Address       string    `gorm:"type:text" json:"address"`
	WhatsappOptIn bool      `gorm:"default:false" json:"whatsapp_opt_in"`
	CreatedAt     time.Time `json:"created_at"`
}
