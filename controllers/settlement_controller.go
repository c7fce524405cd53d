// file: controllers/settlement_controller.go
package controllers

import (
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/GIT-Pushers/Devs-sub000/services"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
)

// DistributeRewards 发放奖金，任何人可触发，整体只生效一次
func DistributeRewards(c *gin.Context) {
	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	payouts, err := services.DistributeRewards(h.ID)
	switch err {
	case nil:
	case services.ErrNotFinalized:
		utils.Error(c, 4109, "Scores not finalized yet")
		return
	case services.ErrAlreadyDistributed:
		utils.Error(c, 3601, "Rewards already distributed")
		return
	default:
		utils.Error(c, 5000, "奖金发放失败: "+err.Error())
		return
	}

	utils.Success(c, "Rewards distributed successfully", gin.H{
		"hackathon_id": h.ID,
		"payouts":      payouts,
	})
}

// RefundStake 质押退款，仅 staker 本人可调用
func RefundStake(c *gin.Context) {
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

	amount, err := services.RefundStake(h.ID, req.TeamID, wallet)
	switch err {
	case nil:
	case services.ErrNotFinalized:
		utils.Error(c, 4109, "Scores not finalized yet")
		return
	case services.ErrNotStaked:
		utils.Error(c, 3602, "Team never staked")
		return
	case services.ErrNotStaker:
		utils.Error(c, 3603, "Only the staker can refund the stake")
		return
	case services.ErrAlreadyRefunded:
		utils.Error(c, 3604, "Stake already refunded")
		return
	default:
		utils.Error(c, 5000, "退还质押失败: "+err.Error())
		return
	}

	utils.Success(c, "Stake refunded successfully", gin.H{
		"hackathon_id": h.ID,
		"team_id":      req.TeamID,
		"amount":       amount,
	})
}

// SettleCreationFee 结算创建费，仅组织者可调用
func SettleCreationFee(c *gin.Context) {
	wallet := middlewares.CallerWallet(c)

	h, ok := loadHackathon(c)
	if !ok {
		return
	}

	refund, err := services.SettleCreationFee(h.ID, wallet)
	switch err {
	case nil:
	case services.ErrNotOrganizer:
		utils.Error(c, 3605, "Only the organizer can settle the creation fee")
		return
	case services.ErrNotFinalized:
		utils.Error(c, 4109, "Scores not finalized yet")
		return
	case services.ErrFeeAlreadySettled:
		utils.Error(c, 3606, "Creation fee already settled")
		return
	default:
		utils.Error(c, 5000, "创建费结算失败: "+err.Error())
		return
	}

	utils.Success(c, "Creation fee settled successfully", gin.H{
		"hackathon_id": h.ID,
		"refund":       refund,
	})
}
