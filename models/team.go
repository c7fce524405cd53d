// file: models/team.go
package models

import (
	"time"
)

// Team 全局队伍，不隶属于某一场黑客松
// JoinCodeHash 只保存 bcrypt 哈希，原始入队口令永不落库
type Team struct {
	ID            uint32       `gorm:"primarykey" json:"id"`
	CreatorWallet string       `gorm:"size:64;not null;index" json:"creator_wallet"`
	MetadataURI   string       `gorm:"size:255" json:"metadata_uri"`
	JoinCodeHash  string       `gorm:"size:255;not null" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Members       []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return "hackhub_team"
}

type TeamMember struct {
	ID       uint32    `gorm:"primarykey" json:"id"`
	TeamID   uint32    `gorm:"uniqueIndex:unique_team_wallet;not null" json:"team_id"`
	Wallet   string    `gorm:"size:64;uniqueIndex:unique_team_wallet;not null" json:"wallet"`
	JoinedAt time.Time `json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "hackhub_team_members"
}
