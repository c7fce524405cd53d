// file: models/registration.go
package models

import (
	"time"
)

// TeamRegistration 对应 hackhub_registration 表，按 (hackathon_id, team_id) 唯一
// 报名后只做增量修改，score_finalized 置位后即为终态
type TeamRegistration struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	HackathonID      uint      `gorm:"uniqueIndex:unique_hack_team;not null" json:"hackathon_id"`
	TeamID           uint32    `gorm:"uniqueIndex:unique_hack_team;not null" json:"team_id"`
	Registered       bool      `gorm:"default:0" json:"registered"`
	Staked           bool      `gorm:"default:0" json:"staked"`
	StakerWallet     string    `gorm:"size:64" json:"staker_wallet"`
	StakeRefunded    bool      `gorm:"default:0" json:"stake_refunded"`
	TokensMinted     bool      `gorm:"default:0" json:"tokens_minted"`
	ProjectSubmitted bool      `gorm:"default:0" json:"project_submitted"`
	RepoHash         string    `gorm:"size:128" json:"repo_hash"`
	AIScore          uint      `gorm:"default:0" json:"ai_score"`
	JudgeScore       uint      `gorm:"default:0" json:"judge_score"`
	ParticipantScore uint64    `gorm:"default:0" json:"participant_score"`
	FinalScore       float64   `gorm:"default:0" json:"final_score"`
	Ranking          uint      `gorm:"default:0" json:"ranking"`
	ScoreFinalized   bool      `gorm:"default:0" json:"score_finalized"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (TeamRegistration) TableName() string {
	return "hackhub_registration"
}

// JudgeScore 单个评委对单支队伍的打分记录，三元组唯一，保证每位评委只打一次
type JudgeScore struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	HackathonID uint      `gorm:"uniqueIndex:unique_judge_vote;not null" json:"hackathon_id"`
	TeamID      uint32    `gorm:"uniqueIndex:unique_judge_vote;not null" json:"team_id"`
	JudgeWallet string    `gorm:"size:64;uniqueIndex:unique_judge_vote;not null" json:"judge_wallet"`
	Score       uint      `gorm:"not null" json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

func (JudgeScore) TableName() string {
	return "hackhub_judge_score"
}
