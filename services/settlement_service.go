// file: services/settlement_service.go
package services

import (
	"errors"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"gorm.io/gorm"
)

// 结算比例
const (
	// PrizePoolPercent 奖池占赞助总额的比例
	PrizePoolPercent = 80
	// FeeRefundPercent 达标时退还创建费的比例
	FeeRefundPercent = 80
	// FeeRefundSubmissionBar 退费所需的最少有效提交数
	FeeRefundSubmissionBar = 100
)

// RankShares 前三名各自占奖池的比例，第四名起不参与分配
var RankShares = [3]uint64{50, 30, 20}

var (
	ErrNotFinalized       = errors.New("scores not finalized yet")
	ErrAlreadyDistributed = errors.New("rewards already distributed")
	ErrNotStaked          = errors.New("team never staked")
	ErrNotStaker          = errors.New("caller is not the staker")
	ErrAlreadyRefunded    = errors.New("stake already refunded")
	ErrNotOrganizer       = errors.New("caller is not the organizer")
	ErrFeeAlreadySettled  = errors.New("creation fee already settled")
)

// RewardPayout 单笔奖金流水
type RewardPayout struct {
	Ranking uint   `json:"ranking"`
	TeamID  uint32 `json:"team_id"`
	Staker  string `json:"staker"`
	Amount  uint64 `json:"amount"`
}

// creditAccount 托管账户入账
func creditAccount(tx *gorm.DB, wallet string, amount uint64) error {
	var account models.Account
	if err := tx.Where(models.Account{Wallet: wallet}).FirstOrCreate(&account).Error; err != nil {
		return err
	}
	return tx.Model(&account).Update("balance", account.Balance+amount).Error
}

// DistributeRewards 按最终排名发放奖金
// 奖池为赞助总额的 80%，前三名按 50/30/20 发给各队 staker
// 发放标志先于任何入账置位，同一事务内完成，二次调用必然拒绝
func DistributeRewards(hackathonID uint) ([]RewardPayout, error) {
	var payouts []RewardPayout

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var h models.Hackathon
		if err := tx.First(&h, hackathonID).Error; err != nil {
			return ErrHackathonNotFound
		}
		if !h.Finalized {
			return ErrNotFinalized
		}
		if h.RewardsDistributed {
			return ErrAlreadyDistributed
		}

		// 先置位，后转账
		if err := tx.Model(&h).Update("rewards_distributed", true).Error; err != nil {
			return err
		}

		pool := h.TotalSponsorshipAmount * PrizePoolPercent / 100

		for i, share := range RankShares {
			rank := uint(i + 1)

			var reg models.TeamRegistration
			if err := tx.Where("hackathon_id = ? AND ranking = ? AND staked = ?", hackathonID, rank, true).
				First(&reg).Error; err != nil {
				continue // 参赛队伍不足三支时跳过空档
			}

			amount := pool * share / 100
			if amount == 0 {
				continue
			}

			if err := creditAccount(tx, reg.StakerWallet, amount); err != nil {
				return err
			}
			if err := tx.Create(&models.EventLog{
				HackathonID: hackathonID,
				TeamID:      reg.TeamID,
				Wallet:      reg.StakerWallet,
				EventType:   models.EventRewardPaid,
				Amount:      amount,
			}).Error; err != nil {
				return err
			}

			payouts = append(payouts, RewardPayout{
				Ranking: rank,
				TeamID:  reg.TeamID,
				Staker:  reg.StakerWallet,
				Amount:  amount,
			})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return payouts, nil
}

// RefundStake 终评冻结后由 staker 取回质押，金额恰为 stake_amount，只可一次
func RefundStake(hackathonID uint, teamID uint32, caller string) (uint64, error) {
	var refunded uint64

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var h models.Hackathon
		if err := tx.First(&h, hackathonID).Error; err != nil {
			return ErrHackathonNotFound
		}
		if !h.Finalized {
			return ErrNotFinalized
		}

		var reg models.TeamRegistration
		if err := tx.Where("hackathon_id = ? AND team_id = ?", hackathonID, teamID).First(&reg).Error; err != nil {
			return ErrNotStaked
		}
		if !reg.Staked {
			return ErrNotStaked
		}
		if reg.StakerWallet != caller {
			return ErrNotStaker
		}
		if reg.StakeRefunded {
			return ErrAlreadyRefunded
		}

		// 先置位，后转账
		if err := tx.Model(&reg).Update("stake_refunded", true).Error; err != nil {
			return err
		}
		if err := creditAccount(tx, caller, h.StakeAmount); err != nil {
			return err
		}

		refunded = h.StakeAmount
		return tx.Create(&models.EventLog{
			HackathonID: hackathonID,
			TeamID:      teamID,
			Wallet:      caller,
			EventType:   models.EventStakeRefunded,
			Amount:      h.StakeAmount,
		}).Error
	})

	if err != nil {
		return 0, err
	}
	return refunded, nil
}

// SettleCreationFee 组织者结算创建费
// 有效提交数达到门槛时退还 80%，否则费用留存；标志置位后不可再次结算
func SettleCreationFee(hackathonID uint, caller string) (uint64, error) {
	var refund uint64

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var h models.Hackathon
		if err := tx.First(&h, hackathonID).Error; err != nil {
			return ErrHackathonNotFound
		}
		if h.OrganizerWallet != caller {
			return ErrNotOrganizer
		}
		if !h.Finalized {
			return ErrNotFinalized
		}
		if h.CreationFeeRefunded {
			return ErrFeeAlreadySettled
		}

		var submitted int64
		if err := tx.Model(&models.TeamRegistration{}).
			Where("hackathon_id = ? AND project_submitted = ?", hackathonID, true).
			Count(&submitted).Error; err != nil {
			return err
		}

		// 无论是否达标都置位，保证该检查只发生一次
		if err := tx.Model(&h).Update("creation_fee_refunded", true).Error; err != nil {
			return err
		}

		if submitted >= FeeRefundSubmissionBar {
			refund = h.CreationFee * FeeRefundPercent / 100
			if err := creditAccount(tx, caller, refund); err != nil {
				return err
			}
		}

		return tx.Create(&models.EventLog{
			HackathonID: hackathonID,
			Wallet:      caller,
			EventType:   models.EventFeeSettled,
			Amount:      refund,
		}).Error
	})

	if err != nil {
		return 0, err
	}
	return refund, nil
}
