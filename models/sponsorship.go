// file: models/sponsorship.go
package models

import (
	"time"
)

// Sponsorship 对应 hackhub_sponsorship 表，仅追加，永不修改或删除
type Sponsorship struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	HackathonID   uint      `gorm:"not null;index" json:"hackathon_id"`
	SponsorWallet string    `gorm:"size:64;not null" json:"sponsor_wallet"`
	Amount        uint64    `gorm:"not null" json:"amount"`
	MetadataURI   string    `gorm:"size:255" json:"metadata_uri"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Sponsorship) TableName() string {
	return "hackhub_sponsorship"
}
