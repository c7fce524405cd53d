// file: services/scoring_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"gorm.io/gorm"
)

// 终评权重：评委 40%、社区投票 35%、自动评分 25%
const (
	JudgeWeight       = 0.40
	ParticipantWeight = 0.35
	AIWeight          = 0.25
)

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrEventNotEnded     = errors.New("hackathon has not ended yet")
	ErrAlreadyFinalized  = errors.New("scores already finalized")
)

// FinalizeScores 一次性计算并冻结终评成绩
// 在单个事务内对全部报名队伍完成加权计分与排名，杜绝增量计分被中途套利；
// finalized 置位后本操作不可重复，排名永不再变
func FinalizeScores(hackathonID uint) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var h models.Hackathon
		if err := tx.First(&h, hackathonID).Error; err != nil {
			return ErrHackathonNotFound
		}
		if h.Finalized {
			return ErrAlreadyFinalized
		}
		if !time.Now().After(h.HackEnd) {
			return ErrEventNotEnded
		}

		var regs []models.TeamRegistration
		if err := tx.Where("hackathon_id = ? AND registered = ?", hackathonID, true).
			Order("team_id asc").Find(&regs).Error; err != nil {
			return err
		}

		// 只有完成提交的队伍参与排名，未提交者冻结在 ranking=0
		ranked := make([]*models.TeamRegistration, 0, len(regs))
		for i := range regs {
			if regs[i].ProjectSubmitted {
				regs[i].FinalScore = JudgeWeight*float64(regs[i].JudgeScore) +
					ParticipantWeight*float64(regs[i].ParticipantScore) +
					AIWeight*float64(regs[i].AIScore)
				ranked = append(ranked, &regs[i])
			}
		}

		// 按总分降序，平分时按队伍ID升序，保证同一输入只有唯一排序结果
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].FinalScore != ranked[j].FinalScore {
				return ranked[i].FinalScore > ranked[j].FinalScore
			}
			return ranked[i].TeamID < ranked[j].TeamID
		})
		for i, reg := range ranked {
			reg.Ranking = uint(i + 1)
		}

		for i := range regs {
			if err := tx.Model(&models.TeamRegistration{}).Where("id = ?", regs[i].ID).
				Updates(map[string]interface{}{
					"final_score":     regs[i].FinalScore,
					"ranking":         regs[i].Ranking,
					"score_finalized": true,
				}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Hackathon{}).Where("id = ?", hackathonID).
			Update("finalized", true).Error; err != nil {
			return err
		}

		return tx.Create(&models.EventLog{
			HackathonID: hackathonID,
			EventType:   models.EventScoresFinalized,
			Amount:      uint64(len(ranked)),
		}).Error
	})
	if err != nil {
		return err
	}

	// 冻结后清掉排行榜缓存，下次查询即为最终排名
	if database.RDB != nil {
		pattern := fmt.Sprintf("leaderboard:%d:*", hackathonID)
		keys, err := database.RDB.Keys(database.Ctx, pattern).Result()
		if err == nil && len(keys) > 0 {
			database.RDB.Del(database.Ctx, keys...)
			log.Printf("Cleared %d leaderboard cache keys from Redis.", len(keys))
		}
	}

	return nil
}
