// file: controllers/hackathon_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/GIT-Pushers/Devs-sub000/mappers"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 平台级常量
const (
	// RequiredCreationFee 创建一场黑客松需缴纳的最低费用
	RequiredCreationFee uint64 = 1000
	// MinJudgeCount 评委名单最少人数
	MinJudgeCount = 5
)

// loadHackathon 辅助函数，按路径参数加载黑客松（含评委名单）
func loadHackathon(c *gin.Context) (*models.Hackathon, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的黑客松ID")
		return nil, false
	}
	var h models.Hackathon
	if err := database.DB.Preload("Judges").First(&h, id).Error; err != nil {
		utils.Error(c, 3301, "Hackathon not found")
		return nil, false
	}
	return &h, true
}

// CreateHackathon 创建黑客松并托管创建费
// 校验时间窗口单调递增、评委人数下限、队伍数区间，费用从组织者托管账户扣除
func CreateHackathon(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	var req dto.CreateHackathonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.Fee < RequiredCreationFee {
		utils.Error(c, 3302, "Insufficient creation fee")
		return
	}
	if len(req.Judges) < MinJudgeCount {
		utils.Error(c, 3303, "Too few judges, at least 5 required")
		return
	}
	seen := make(map[string]struct{}, len(req.Judges))
	for _, w := range req.Judges {
		if _, dup := seen[w]; dup {
			utils.Error(c, 3309, "Duplicate judge wallet")
			return
		}
		seen[w] = struct{}{}
	}
	if !req.HackStart.After(req.SponsorshipEnd) {
		utils.Error(c, 3304, "Invalid sponsorship end, hack start must be later")
		return
	}
	if !req.HackEnd.After(req.HackStart) {
		utils.Error(c, 3305, "Invalid hack window, hack end must be after hack start")
		return
	}
	if req.MinTeams < 1 || req.MaxTeams < req.MinTeams {
		utils.Error(c, 3306, "Invalid team count range")
		return
	}

	newHackathon := mappers.MapCreateReqToModel(req, wallet)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where(models.Account{Wallet: wallet}).FirstOrCreate(&account).Error; err != nil {
			return err
		}
		if account.Balance < req.Fee {
			return errInsufficientBalance
		}

		// 先扣款入托管，再落库
		if err := tx.Model(&account).Update("balance", account.Balance-req.Fee).Error; err != nil {
			return err
		}
		if err := tx.Create(&newHackathon).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			HackathonID: newHackathon.ID,
			Wallet:      wallet,
			EventType:   models.EventHackathonCreated,
			Amount:      req.Fee,
		}).Error
	})

	if err == errInsufficientBalance {
		utils.Error(c, 3307, "Insufficient account balance for creation fee")
		return
	}
	if err != nil {
		utils.Error(c, 5000, "创建黑客松失败: "+err.Error())
		return
	}

	utils.Success(c, "Hackathon created successfully", gin.H{
		"id":        newHackathon.ID,
		"organizer": wallet,
		"fee":       req.Fee,
	})
}

// ListHackathons 分页列出全部黑客松
func ListHackathons(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var hackathons []models.Hackathon
	database.DB.Preload("Judges").Order("id desc").Limit(limit).Find(&hackathons)

	utils.Success(c, "success", hackathons)
}

// GetHackathon 查询黑客松详情
func GetHackathon(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}
	utils.Success(c, "success", h)
}

// GetHackathonStatus 查询当前阶段与剩余时间
func GetHackathonStatus(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	now := time.Now()
	phase := h.CurrentPhase(now)

	var remaining string
	switch phase {
	case models.PhaseSponsorship:
		remaining = h.SponsorshipEnd.Sub(now).Round(time.Second).String()
	case models.PhaseRegistration:
		remaining = h.HackStart.Sub(now).Round(time.Second).String()
	case models.PhaseBuilding:
		remaining = h.HackEnd.Sub(now).Round(time.Second).String()
	default:
		remaining = "0s"
	}

	utils.Success(c, "success", dto.HackathonStatusResp{
		Phase:         string(phase),
		Now:           now.Format("2006-01-02 15:04:05"),
		RemainingTime: remaining,
		Finalized:     h.Finalized,
	})
}

// SponsorHackathon 赞助黑客松，仅赞助阶段可用
// 金额低于本场设定的单笔门槛时拒绝，赞助记录仅追加
func SponsorHackathon(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var req dto.SponsorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if h.CurrentPhase(time.Now()) != models.PhaseSponsorship {
		utils.Error(c, 4101, "Not in sponsorship phase")
		return
	}
	if req.Amount < h.MinSponsorshipThreshold {
		utils.Error(c, 3308, "Below minimum sponsorship threshold")
		return
	}

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

		entry := models.Sponsorship{
			HackathonID:   h.ID,
			SponsorWallet: wallet,
			Amount:        req.Amount,
			MetadataURI:   req.MetadataURI,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Hackathon{}).Where("id = ?", h.ID).
			Update("total_sponsorship_amount", h.TotalSponsorshipAmount+req.Amount).Error; err != nil {
			return err
		}

		return tx.Create(&models.EventLog{
			HackathonID: h.ID,
			Wallet:      wallet,
			EventType:   models.EventSponsorshipReceived,
			Amount:      req.Amount,
		}).Error
	})

	if err == errInsufficientBalance {
		utils.Error(c, 3307, "Insufficient account balance")
		return
	}
	if err != nil {
		utils.Error(c, 5000, "赞助失败: "+err.Error())
		return
	}

	utils.Success(c, "Sponsorship received successfully", gin.H{
		"hackathon_id": h.ID,
		"amount":       req.Amount,
	})
}

// GetSponsors 查询赞助列表
func GetSponsors(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	var sponsors []models.Sponsorship
	database.DB.Where("hackathon_id = ?", h.ID).Order("id asc").Find(&sponsors)

	utils.Success(c, "success", gin.H{
		"total_sponsorship_amount": h.TotalSponsorshipAmount,
		"sponsors":                 sponsors,
	})
}

// GetHackathonEvents 查询审计事件流水，替代实时动态
func GetHackathonEvents(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	limitStr := c.DefaultQuery("limit", "50")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var events []models.EventLog
	database.DB.Where("hackathon_id = ?", h.ID).Order("id desc").Limit(limit).Find(&events)

	utils.Success(c, "success", events)
}
