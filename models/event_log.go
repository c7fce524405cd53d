// file: models/event_log.go
package models

import (
	"time"
)

// 审计事件类型
const (
	EventHackathonCreated    = "hackathon_created"
	EventSponsorshipReceived = "sponsorship_received"
	EventGitHubVerified      = "github_verified"
	EventTeamCreated         = "team_created"
	EventTeamJoined          = "team_joined"
	EventTeamRegistered      = "team_registered"
	EventStakePlaced         = "stake_placed"
	EventTokensMinted        = "tokens_minted"
	EventProjectSubmitted    = "project_submitted"
	EventJudgeScored         = "judge_scored"
	EventVoteCast            = "vote_cast"
	EventScoresFinalized     = "scores_finalized"
	EventRewardPaid          = "reward_paid"
	EventStakeRefunded       = "stake_refunded"
	EventFeeSettled          = "fee_settled"
	EventDeposit             = "deposit"
)

// EventLog 对应 hackhub_event_log 审计表，仅追加
// 每个状态变更操作都在同一事务内写入一条事件，构成系统的对外审计流水
type EventLog struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	HackathonID uint      `gorm:"index" json:"hackathon_id"`
	TeamID      uint32    `gorm:"index" json:"team_id"`
	Wallet      string    `gorm:"size:64" json:"wallet"`
	EventType   string    `gorm:"size:32;not null" json:"event_type"`
	Amount      uint64    `gorm:"default:0" json:"amount"`
	Detail      string    `gorm:"size:255" json:"detail"`
	CreatedAt   time.Time `json:"created_at"`
}

func (EventLog) TableName() string {
	return "hackhub_event_log"
}
