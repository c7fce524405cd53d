// file: models/hackathon.go
package models

import (
	"time"
)

// HackathonPhase 定义黑客松生命周期阶段
// 阶段不落库，统一由 CurrentPhase 根据当前时间实时推导，避免存储状态与时钟不一致
type HackathonPhase string

const (
	PhaseSponsorship  HackathonPhase = "sponsorship"
	PhaseRegistration HackathonPhase = "registration"
	PhaseBuilding     HackathonPhase = "building"
	PhasePostEvent    HackathonPhase = "post_event"
	PhaseFinalized    HackathonPhase = "finalized"
)

// Hackathon 对应 hackhub_hackathon 表
// 金额字段一律使用平台最小记账单位 (uint64)
type Hackathon struct {
	ID                      uint             `gorm:"primarykey" json:"id"`
	OrganizerWallet         string           `gorm:"size:64;not null;index" json:"organizer_wallet"`
	MetadataURI             string           `gorm:"size:255" json:"metadata_uri"`
	SponsorshipEnd          time.Time        `gorm:"not null" json:"sponsorship_end"`
	HackStart               time.Time        `gorm:"not null" json:"hack_start"`
	HackEnd                 time.Time        `gorm:"not null" json:"hack_end"`
	StakeAmount             uint64           `gorm:"not null" json:"stake_amount"`
	MinTeams                uint             `gorm:"not null" json:"min_teams"`
	MaxTeams                uint             `gorm:"not null" json:"max_teams"`
	CreationFee             uint64           `gorm:"not null" json:"creation_fee"`
	CreationFeeRefunded     bool             `gorm:"default:0" json:"creation_fee_refunded"`
	MinSponsorshipThreshold uint64           `gorm:"not null" json:"min_sponsorship_threshold"`
	TotalSponsorshipAmount  uint64           `gorm:"default:0" json:"total_sponsorship_amount"`
	Finalized               bool             `gorm:"default:0" json:"finalized"`
	RewardsDistributed      bool             `gorm:"default:0" json:"rewards_distributed"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
	Judges                  []HackathonJudge `gorm:"foreignKey:HackathonID" json:"judges,omitempty"`
}

func (Hackathon) TableName() string {
	return "hackhub_hackathon"
}

// HackathonJudge 评委名单，创建时固定，之后不可变更
type HackathonJudge struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	HackathonID uint   `gorm:"uniqueIndex:unique_hack_judge;not null" json:"hackathon_id"`
	JudgeWallet string `gorm:"size:64;uniqueIndex:unique_hack_judge;not null" json:"judge_wallet"`
	Position    uint   `gorm:"not null" json:"position"`
}

func (HackathonJudge) TableName() string {
	return "hackhub_hackathon_judge"
}

// CurrentPhase 根据当前时间推导黑客松所处阶段
// 边界为闭区间右端：now == sponsorship_end 仍属于赞助阶段
func (h *Hackathon) CurrentPhase(now time.Time) HackathonPhase {
	if h.Finalized {
		return PhaseFinalized
	}
	if !now.After(h.SponsorshipEnd) {
		return PhaseSponsorship
	}
	if !now.After(h.HackStart) {
		return PhaseRegistration
	}
	if !now.After(h.HackEnd) {
		return PhaseBuilding
	}
	return PhasePostEvent
}

// IsJudge 判断钱包是否在本场黑客松的固定评委名单中
func (h *Hackathon) IsJudge(wallet string) bool {
	for _, j := range h.Judges {
		if j.JudgeWallet == wallet {
			return true
		}
	}
	return false
}
