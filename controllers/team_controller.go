// file: controllers/team_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// isTeamMember 辅助函数，检查钱包是否为指定队伍成员
func isTeamMember(teamID uint32, wallet string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND wallet = ?", teamID, wallet).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateTeam 创建队伍，创建者成为首位成员
// 仅允许已完成 GitHub 身份绑定的钱包创建
func CreateTeam(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	var req struct {
		MetadataURI string `json:"metadata_uri"`
		JoinCode    string `json:"join_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var binding models.GitHubBinding
	if err := database.DB.Where("wallet = ?", wallet).First(&binding).Error; err != nil {
		utils.Error(c, 3101, "Identity not verified")
		return
	}

	if len(req.JoinCode) < utils.MinJoinCodeLength {
		utils.Error(c, 3102, "Join code too short, minimum 8 characters")
		return
	}

	codeHash, err := utils.HashJoinCode(req.JoinCode)
	if err != nil {
		utils.Error(c, 5000, "口令哈希失败")
		return
	}

	newTeam := models.Team{
		CreatorWallet: wallet,
		MetadataURI:   req.MetadataURI,
		JoinCodeHash:  codeHash,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newTeam).Error; err != nil {
			return err
		}
		creator := models.TeamMember{
			TeamID:   newTeam.ID,
			Wallet:   wallet,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(&creator).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			TeamID:    newTeam.ID,
			Wallet:    wallet,
			EventType: models.EventTeamCreated,
		}).Error
	})

	if err != nil {
		utils.Error(c, 5000, "创建队伍失败: "+err.Error())
		return
	}

	utils.Success(c, "Team created successfully", gin.H{
		"id":             newTeam.ID,
		"creator_wallet": newTeam.CreatorWallet,
		"metadata_uri":   newTeam.MetadataURI,
	})
}

// JoinTeam 凭入队口令加入队伍，口令校验失败或重复加入一律拒绝
func JoinTeam(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var req struct {
		JoinCode string `json:"join_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 3103, "Team not found")
		return
	}

	if !utils.CheckJoinCode(req.JoinCode, team.JoinCodeHash) {
		utils.Error(c, 3104, "Invalid join code")
		return
	}

	inTeam, err := isTeamMember(team.ID, wallet)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if inTeam {
		utils.Error(c, 3105, "Already a member")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		member := models.TeamMember{
			TeamID:   team.ID,
			Wallet:   wallet,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			TeamID:    team.ID,
			Wallet:    wallet,
			EventType: models.EventTeamJoined,
		}).Error
	})

	if err != nil {
		utils.Error(c, 5000, "加入队伍失败")
		return
	}

	utils.Success(c, "Joined team successfully", gin.H{"team_id": team.ID})
}

// GetTeam 查询队伍详情（含成员列表，不含口令哈希）
func GetTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Members").First(&team, teamID).Error; err != nil {
		utils.Error(c, 3103, "Team not found")
		return
	}

	utils.Success(c, "success", team)
}

// GetUserTeams 查询钱包所属的全部队伍
func GetUserTeams(c *gin.Context) {
	wallet := c.Param("wallet")

	var teamIDs []uint32
	database.DB.Model(&models.TeamMember{}).Where("wallet = ?", wallet).Pluck("team_id", &teamIDs)

	teams := make([]models.Team, 0)
	if len(teamIDs) > 0 {
		database.DB.Preload("Members").Where("id IN ?", teamIDs).Find(&teams)
	}

	utils.Success(c, "success", teams)
}
