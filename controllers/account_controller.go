// file: controllers/account_controller.go
package controllers

import (
	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAccount 查询托管账户余额与 nonce，账户不存在时按零值返回
func GetAccount(c *gin.Context) {
	wallet := c.Param("wallet")

	var account models.Account
	if err := database.DB.First(&account, "wallet = ?", wallet).Error; err != nil {
		utils.Success(c, "success", models.Account{Wallet: wallet})
		return
	}
	utils.Success(c, "success", account)
}

// Deposit 托管账户入金，代替链上充值入口
func Deposit(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	var req struct {
		Amount uint64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var account models.Account
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.Account{Wallet: wallet}).FirstOrCreate(&account).Error; err != nil {
			return err
		}
		if err := tx.Model(&account).Update("balance", account.Balance+req.Amount).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventLog{
			Wallet:    wallet,
			EventType: models.EventDeposit,
			Amount:    req.Amount,
		}).Error
	})

	if err != nil {
		utils.Error(c, 5000, "入金失败: "+err.Error())
		return
	}

	utils.Success(c, "Deposit successful", gin.H{
		"wallet":  wallet,
		"balance": account.Balance + req.Amount,
	})
}
