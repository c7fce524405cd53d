// file: dto/hackathon.go
package dto

import "time"

// ========== 请求 DTO ==========

type CreateHackathonReq struct {
	MetadataURI             string    `json:"metadata_uri"`
	SponsorshipEnd          time.Time `json:"sponsorship_end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	HackStart               time.Time `json:"hack_start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	HackEnd                 time.Time `json:"hack_end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	StakeAmount             uint64    `json:"stake_amount" binding:"required"`
	MinTeams                uint      `json:"min_teams"`
	MaxTeams                uint      `json:"max_teams" binding:"required"`
	Fee                     uint64    `json:"fee" binding:"required"`
	MinSponsorshipThreshold uint64    `json:"min_sponsorship_threshold"`
	Judges                  []string  `json:"judges" binding:"required"`
}

type SponsorReq struct {
	Amount      uint64 `json:"amount" binding:"required"`
	MetadataURI string `json:"metadata_uri"`
}

type SubmitProjectReq struct {
	TeamID   uint32 `json:"team_id" binding:"required"`
	RepoHash string `json:"repo_hash" binding:"required"`
	AIScore  uint   `json:"ai_score"`
}

// ========== 响应 DTO ==========

type HackathonStatusResp struct {
	Phase         string `json:"phase"`
	Now           string `json:"now"`
	RemainingTime string `json:"remaining_time"`
	Finalized     bool   `json:"finalized"`
}

type LeaderboardEntryResp struct {
	Ranking          uint    `json:"ranking"`
	TeamID           uint32  `json:"team_id"`
	JudgeScore       uint    `json:"judge_score"`
	ParticipantScore uint64  `json:"participant_score"`
	AIScore          uint    `json:"ai_score"`
	FinalScore       float64 `json:"final_score"`
	StakerWallet     string  `json:"staker_wallet"`
}
