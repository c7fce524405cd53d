// file: controllers/registration_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VotingTokenAllotment 质押确认时为每位队员铸造的固定投票额度
const VotingTokenAllotment uint64 = 100

// RegisterTeam 报名参赛
// 赞助阶段结束后开放，黑客松结束前关闭；仅队伍成员可发起，重复报名拒绝
func RegisterTeam(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var req struct {
		TeamID uint32 `json:"team_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	phase := h.CurrentPhase(time.Now())
	if phase == models.PhaseSponsorship {
		utils.Error(c, 4102, "Sponsorship phase not ended")
		return
	}
	if phase == models.PhasePostEvent || phase == models.PhaseFinalized {
		utils.Error(c, 4103, "Registration closed")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, req.TeamID).Error; err != nil {
		utils.Error(c, 3103, "Team not found")
		return
	}

	isMember, err := isTeamMember(team.ID, wallet)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if !isMember {
		utils.Error(c, 3401, "Caller is not a team member")
		return
	}

	var existing models.TeamRegistration
	if err := database.DB.Where("hackathon_id = ? AND team_id = ?", h.ID, team.ID).First(&existing).Error; err == nil {
		utils.Error(c, 3402, "Already registered")
		return
	}

	var registered int64
	database.DB.Model(&models.TeamRegistration{}).Where("hackathon_id = ?", h.ID).Count(&registered)
	if uint(registered) >= h.MaxTeams {
		utils.Error(c, 3403, "Hackathon is full")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		reg := models.TeamRegistration{
			HackathonID: h.ID,
			TeamID:      team.ID,
			Registered:  true,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			HackathonID: h.ID,
			TeamID:      team.ID,
			Wallet:      wallet,
			EventType:   models.EventTeamRegistered,
		}).Error
	})

	if err != nil {
		utils.Error(c, 5000, "报名失败: "+err.Error())
		return
	}

	utils.Success(c, "Team registered successfully", gin.H{
		"hackathon_id": h.ID,
		"team_id":      team.ID,
	})
}

// StakeForTeam 为已报名队伍缴纳质押
// 金额必须与本场 stake_amount 完全一致，多付少付均拒绝
// 质押确认后为当前每位队员铸造固定投票额度
func StakeForTeam(c *gin.Context) {
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

	phase := h.CurrentPhase(time.Now())
	if phase == models.PhaseSponsorship {
		utils.Error(c, 4102, "Sponsorship phase not ended")
		return
	}
	if phase == models.PhasePostEvent || phase == models.PhaseFinalized {
		utils.Error(c, 4104, "Staking closed")
		return
	}

	var reg models.TeamRegistration
	if err := database.DB.Where("hackathon_id = ? AND team_id = ?", h.ID, req.TeamID).First(&reg).Error; err != nil {
		utils.Error(c, 3404, "Team not registered for this hackathon")
		return
	}
	if reg.Staked {
		utils.Error(c, 3405, "Stake already placed")
		return
	}
	if req.Amount != h.StakeAmount {
		utils.Error(c, 3406, "Incorrect stake amount")
		return
	}

	var members []models.TeamMember
	database.DB.Where("team_id = ?", req.TeamID).Find(&members)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where(models.Account{Wallet: wallet}).FirstOrCreate(&account).Error; err != nil {
			return err
		}
		if account.Balance < req.Amount {
			return errInsufficientBalance
		}
		if err := tx.Model(&account).Update("balance", account.Balance-req.Amount).Error; err != nil {
			return err
		}

		if err := tx.Model(&reg).Updates(map[string]interface{}{
			"staked":        true,
			"staker_wallet": wallet,
			"tokens_minted": true,
		}).Error; err != nil {
			return err
		}

		// 为当前每位队员铸造投票额度，同一钱包重复铸造时做累加
		for _, m := range members {
			token := models.VotingToken{
				HackathonID: h.ID,
				Wallet:      m.Wallet,
				Balance:     VotingTokenAllotment,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "hackathon_id"}, {Name: "wallet"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"balance": gorm.Expr("balance + ?", VotingTokenAllotment),
				}),
			}).Create(&token).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&models.EventLog{
			HackathonID: h.ID,
			TeamID:      req.TeamID,
			Wallet:      wallet,
			EventType:   models.EventStakePlaced,
			Amount:      req.Amount,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			HackathonID: h.ID,
			TeamID:      req.TeamID,
			Wallet:      wallet,
			EventType:   models.EventTokensMinted,
			Amount:      VotingTokenAllotment * uint64(len(members)),
		}).Error
	})

	if err == errInsufficientBalance {
		utils.Error(c, 3307, "Insufficient account balance for stake")
		return
	}
	if err != nil {
		utils.Error(c, 5000, "质押失败: "+err.Error())
		return
	}

	utils.Success(c, "Stake placed successfully", gin.H{
		"hackathon_id": h.ID,
		"team_id":      req.TeamID,
		"staker":       wallet,
		"amount":       req.Amount,
	})
}

// SubmitProject 提交参赛项目
// 仅开发阶段可提交；需已完成质押；重复提交拒绝，不允许覆盖
// ai_score 由链下分析服务给出，作为已验证的外部输入直接入库
func SubmitProject(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var req dto.SubmitProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	if req.AIScore > 100 {
		utils.Error(c, 1003, "AI score must be between 0 and 100")
		return
	}

	if h.CurrentPhase(time.Now()) != models.PhaseBuilding {
		utils.Error(c, 4105, "Not in building phase")
		return
	}

	var reg models.TeamRegistration
	if err := database.DB.Where("hackathon_id = ? AND team_id = ?", h.ID, req.TeamID).First(&reg).Error; err != nil {
		utils.Error(c, 3404, "Team not registered for this hackathon")
		return
	}
	if !reg.Staked {
		utils.Error(c, 3407, "Stake required before submission")
		return
	}
	if reg.ProjectSubmitted {
		utils.Error(c, 3408, "Project already submitted")
		return
	}

	isMember, err := isTeamMember(req.TeamID, wallet)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if !isMember {
		utils.Error(c, 3401, "Caller is not a team member")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&reg).Updates(map[string]interface{}{
			"project_submitted": true,
			"repo_hash":         req.RepoHash,
			"ai_score":          req.AIScore,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			HackathonID: h.ID,
			TeamID:      req.TeamID,
			Wallet:      wallet,
			EventType:   models.EventProjectSubmitted,
			Detail:      req.RepoHash,
		}).Error
	})

	if err != nil {
		utils.Error(c, 5000, "提交项目失败: "+err.Error())
		return
	}

	utils.Success(c, "Project submitted successfully", gin.H{
		"hackathon_id": h.ID,
		"team_id":      req.TeamID,
		"repo_hash":    req.RepoHash,
		"ai_score":     req.AIScore,
	})
}

// GetHackathonTeams 查询本场全部报名记录
func GetHackathonTeams(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var regs []models.TeamRegistration
	database.DB.Where("hackathon_id = ?", h.ID).Order("team_id asc").Find(&regs)

	utils.Success(c, "success", regs)
}

// GetTeamRegistration 查询单支队伍的报名记录
func GetTeamRegistration(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var reg models.TeamRegistration
	if err := database.DB.Where("hackathon_id = ? AND team_id = ?", h.ID, teamID).First(&reg).Error; err != nil {
		utils.Error(c, 3404, "Team not registered for this hackathon")
		return
	}

	utils.Success(c, "success", reg)
}
