// file: models/voting_token.go
package models

import (
	"time"
)

// VotingToken 按黑客松隔离的投票权余额，质押确认时铸造，投票时扣减
type VotingToken struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	HackathonID uint      `gorm:"uniqueIndex:unique_hack_wallet;not null" json:"hackathon_id"`
	Wallet      string    `gorm:"size:64;uniqueIndex:unique_hack_wallet;not null" json:"wallet"`
	Balance     uint64    `gorm:"default:0" json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VotingToken) TableName() string {
	return "hackhub_voting_token"
}
