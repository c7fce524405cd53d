// file: controllers/github_controller.go
package controllers

import (
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 绑定声明的签名新鲜度窗口，超过即视为过期签名
const bindFreshnessWindow = 10 * time.Minute

// BindGitHub 将 GitHub 账号永久绑定到调用方钱包
// 声明五元组 (github_id, handle, wallet, nonce, timestamp) 必须由钱包私钥签名，
// nonce 严格递增、timestamp 在新鲜度窗口内，绑定成功后不可解绑
func BindGitHub(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	var req struct {
		GitHubID     string `json:"github_id" binding:"required"`
		GitHubHandle string `json:"github_handle" binding:"required"`
		Nonce        uint64 `json:"nonce"`
		Timestamp    int64  `json:"timestamp" binding:"required"`
		Signature    string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	now := time.Now()
	ts := time.Unix(req.Timestamp, 0)
	if now.Sub(ts) > bindFreshnessWindow || ts.Sub(now) > bindFreshnessWindow {
		utils.Error(c, 3201, "Signature expired")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where(models.Account{Wallet: wallet}).FirstOrCreate(&account).Error; err != nil {
			return err
		}

		if req.Nonce != account.Nonce {
			return errInvalidNonce
		}

		msg := utils.EncodeBindMessage(req.GitHubID, req.GitHubHandle, wallet, req.Nonce, req.Timestamp)
		if !utils.VerifyWalletSignature(wallet, msg, req.Signature) {
			return errBadSignature
		}

		var existing models.GitHubBinding
		if err := tx.Where("github_id = ?", req.GitHubID).First(&existing).Error; err == nil {
			return errGitHubLinked
		}
		if err := tx.Where("wallet = ?", wallet).First(&existing).Error; err == nil {
			return errWalletBound
		}

		binding := models.GitHubBinding{
			GitHubID:     req.GitHubID,
			GitHubHandle: req.GitHubHandle,
			Wallet:       wallet,
			Nonce:        req.Nonce,
		}
		if err := tx.Create(&binding).Error; err != nil {
			return err
		}

		// 签名校验与 nonce 推进在同一事务内完成，避免 TOCTOU
		if err := tx.Model(&account).Update("nonce", account.Nonce+1).Error; err != nil {
			return err
		}

		return tx.Create(&models.EventLog{
			Wallet:    wallet,
			EventType: models.EventGitHubVerified,
			Detail:    req.GitHubHandle,
		}).Error
	})

	switch err {
	case nil:
	case errInvalidNonce:
		utils.Error(c, 3202, "Invalid nonce")
		return
	case errBadSignature:
		utils.Error(c, 3203, "Invalid signature")
		return
	case errGitHubLinked:
		utils.Error(c, 3204, "GitHub account already linked to another wallet")
		return
	case errWalletBound:
		utils.Error(c, 3205, "Wallet already has a verified binding")
		return
	default:
		utils.Error(c, 5000, "绑定失败: "+err.Error())
		return
	}

	utils.Success(c, "GitHub account verified successfully", gin.H{
		"github_id": req.GitHubID,
		"wallet":    wallet,
	})
}

// GetNonce 查询钱包当前期望的绑定 nonce，账户不存在时视为 0
func GetNonce(c *gin.Context) {
	wallet := c.Param("wallet")

	var account models.Account
	if err := database.DB.First(&account, "wallet = ?", wallet).Error; err != nil {
		utils.Success(c, "success", gin.H{"wallet": wallet, "nonce": 0})
		return
	}
	utils.Success(c, "success", gin.H{"wallet": wallet, "nonce": account.Nonce})
}

// IsVerified 查询钱包是否已有 GitHub 绑定
func IsVerified(c *gin.Context) {
	wallet := c.Param("wallet")

	var binding models.GitHubBinding
	if err := database.DB.Where("wallet = ?", wallet).First(&binding).Error; err != nil {
		utils.Success(c, "success", gin.H{"wallet": wallet, "verified": false})
		return
	}
	utils.Success(c, "success", gin.H{
		"wallet":        wallet,
		"verified":      true,
		"github_handle": binding.GitHubHandle,
	})
}
