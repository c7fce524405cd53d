// file: controllers/auth_controller.go
package controllers

import (
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 登录挑战有效期
const challengeTTL = 10 * time.Minute

// RequestChallenge 为钱包签发一次性登录挑战
func RequestChallenge(c *gin.Context) {
	var req struct {
		Wallet string `json:"wallet" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	challenge := models.AuthChallenge{
		Wallet:    req.Wallet,
		Challenge: uuid.New().String(),
		ExpiresAt: time.Now().Add(challengeTTL),
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	utils.Success(c, "success", gin.H{
		"challenge":  challenge.Challenge,
		"expires_at": challenge.ExpiresAt,
	})
}

// Login 校验钱包对挑战的签名，签发会话 Token
// 挑战一次性消费，过期或已用过的挑战一律拒绝
func Login(c *gin.Context) {
	var req struct {
		Wallet    string `json:"wallet" binding:"required"`
		Challenge string `json:"challenge" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var challenge models.AuthChallenge
	if err := database.DB.Where("wallet = ? AND challenge = ?", req.Wallet, req.Challenge).First(&challenge).Error; err != nil {
		utils.Error(c, 2001, "Unknown or already used challenge")
		return
	}
	if time.Now().After(challenge.ExpiresAt) {
		database.DB.Delete(&challenge)
		utils.Error(c, 2002, "Challenge expired")
		return
	}

	msg := utils.EncodeLoginMessage(req.Challenge, req.Wallet)
	if !utils.VerifyWalletSignature(req.Wallet, msg, req.Signature) {
		utils.Error(c, 2003, "Invalid signature")
		return
	}

	// 消费挑战，防止重放
	database.DB.Delete(&challenge)

	token, err := utils.GenerateToken(req.Wallet)
	if err != nil {
		utils.Error(c, 5000, "生成 Token 失败")
		return
	}

	utils.Success(c, "Login successful", gin.H{"token": token, "wallet": req.Wallet})
}
