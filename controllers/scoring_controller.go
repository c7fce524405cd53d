// file: controllers/scoring_controller.go
package controllers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/GIT-Pushers/Devs-sub000/mappers"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/services"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmitJudgeScore 评委打分，仅赛后阶段可用
// 每位评委对每支队伍最多打一次分，得分累加进 judge_score（求和口径，不取均值）
func SubmitJudgeScore(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var req struct {
		TeamID uint32 `json:"team_id" binding:"required"`
		Score  uint   `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	if req.Score > 100 {
		utils.Error(c, 1003, "Score must be between 0 and 100")
		return
	}

	if h.CurrentPhase(time.Now()) != models.PhasePostEvent {
		utils.Error(c, 4106, "Judging is only open after the event ends")
		return
	}
	if !h.IsJudge(wallet) {
		utils.Error(c, 3501, "Not a judge of this hackathon")
		return
	}

	var reg models.TeamRegistration
	if err := database.DB.Where("hackathon_id = ? AND team_id = ?", h.ID, req.TeamID).First(&reg).Error; err != nil {
		utils.Error(c, 3404, "Team not registered for this hackathon")
		return
	}

	var existing models.JudgeScore
	if err := database.DB.Where("hackathon_id = ? AND team_id = ? AND judge_wallet = ?",
		h.ID, req.TeamID, wallet).First(&existing).Error; err == nil {
		utils.Error(c, 3502, "Judge already scored this team")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		record := models.JudgeScore{
			HackathonID: h.ID,
			TeamID:      req.TeamID,
			JudgeWallet: wallet,
			Score:       req.Score,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if err := tx.Model(&reg).Update("judge_score", reg.JudgeScore+req.Score).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			HackathonID: h.ID,
			TeamID:      req.TeamID,
			Wallet:      wallet,
			EventType:   models.EventJudgeScored,
			Amount:      uint64(req.Score),
		}).Error
	})

	if err != nil {
		utils.Error(c, 5000, "评分失败: "+err.Error())
		return
	}

	utils.Success(c, "Judge score submitted successfully", gin.H{
		"hackathon_id": h.ID,
		"team_id":      req.TeamID,
		"score":        req.Score,
	})
}

// VoteForTeam 社区投票，消耗调用方在本场的投票额度
// 目标队伍必须已提交项目；禁止给自己所在队伍投票
func VoteForTeam(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var req struct {
		TeamID uint32 `json:"team_id" binding:"required"`
		Amount uint64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if h.CurrentPhase(time.Now()) != models.PhasePostEvent {
		utils.Error(c, 4107, "Voting is only open after the event ends")
		return
	}

	var reg models.TeamRegistration
	if err := database.DB.Where("hackathon_id = ? AND team_id = ?", h.ID, req.TeamID).First(&reg).Error; err != nil {
		utils.Error(c, 3404, "Team not registered for this hackathon")
		return
	}
	if !reg.ProjectSubmitted {
		utils.Error(c, 3503, "Team has not submitted a project")
		return
	}

	isMember, err := isTeamMember(req.TeamID, wallet)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if isMember {
		utils.Error(c, 3504, "Self-voting is not allowed")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var token models.VotingToken
		if err := tx.Where("hackathon_id = ? AND wallet = ?", h.ID, wallet).First(&token).Error; err != nil {
			return errInsufficientBalance
		}
		if token.Balance < req.Amount {
			return errInsufficientBalance
		}

		if err := tx.Model(&token).Update("balance", token.Balance-req.Amount).Error; err != nil {
			return err
		}
		if err := tx.Model(&reg).Update("participant_score", reg.ParticipantScore+req.Amount).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			HackathonID: h.ID,
			TeamID:      req.TeamID,
			Wallet:      wallet,
			EventType:   models.EventVoteCast,
			Amount:      req.Amount,
		}).Error
	})

	if err == errInsufficientBalance {
		utils.Error(c, 3505, "Insufficient voting token balance")
		return
	}
	if err != nil {
		utils.Error(c, 5000, "投票失败: "+err.Error())
		return
	}

	utils.Success(c, "Vote cast successfully", gin.H{
		"hackathon_id": h.ID,
		"team_id":      req.TeamID,
		"amount":       req.Amount,
	})
}

// CalculateFinalScores 触发终评冻结，任何人可调用，只允许生效一次
func CalculateFinalScores(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	err := services.FinalizeScores(h.ID)
	switch err {
	case nil:
	case services.ErrEventNotEnded:
		utils.Error(c, 4108, "Hackathon has not ended yet")
		return
	case services.ErrAlreadyFinalized:
		utils.Error(c, 3506, "Scores already finalized")
		return
	default:
		utils.Error(c, 5000, "终评计算失败: "+err.Error())
		return
	}

	utils.Success(c, "Final scores calculated successfully", gin.H{"hackathon_id": h.ID})
}

// GetLeaderboard 查询终评排行榜，带 Redis 读缓存
func GetLeaderboard(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("leaderboard:%d:%d", h.ID, limit)
	if database.RDB != nil {
		val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var cached []dto.LeaderboardEntryResp
			if json.Unmarshal([]byte(val), &cached) == nil {
				utils.Success(c, "success (from cache)", cached)
				return
			}
		}
	}

	var regs []models.TeamRegistration
	database.DB.Where("hackathon_id = ? AND score_finalized = ? AND ranking > 0", h.ID, true).
		Order("ranking asc").Limit(limit).Find(&regs)

	results := make([]dto.LeaderboardEntryResp, 0, len(regs))
	for _, reg := range regs {
		results = append(results, mappers.MapRegToLeaderboardEntry(reg))
	}

	if database.RDB != nil {
		if jsonData, err := json.Marshal(results); err == nil {
			// 终评冻结后排名不再变化，短缓存只为挡住热点查询
			database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
		}
	}

	utils.Success(c, "success", results)
}

// IsJudgeQuery 查询某钱包是否为本场评委
func IsJudgeQuery(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}
	wallet := c.Param("wallet")
	utils.Success(c, "success", gin.H{
		"wallet":   wallet,
		"is_judge": h.IsJudge(wallet),
	})
}

// GetVotingToken 查询某钱包在本场的剩余投票额度
func GetVotingToken(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}
	wallet := c.Param("wallet")

	var token models.VotingToken
	if err := database.DB.Where("hackathon_id = ? AND wallet = ?", h.ID, wallet).First(&token).Error; err != nil {
		utils.Success(c, "success", gin.H{"wallet": wallet, "balance": 0})
		return
	}
	utils.Success(c, "success", gin.H{"wallet": wallet, "balance": token.Balance})
}
