// file: controllers/e2e_test.go
package controllers_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullHackathonLifecycle 完整走一遍生命周期：
// 创建 → 赞助 → 报名/质押/提交 → 评委打分 → 社区投票 → 终评 → 发奖 → 退押 → 结算创建费
func TestFullHackathonLifecycle(t *testing.T) {
	r := setupRouter(t)
	organizer := newTestWallet(t)
	judges, judgeAddrs := fiveJudges(t)

	now := time.Now()
	hackID := createHackathon(t, r, organizer,
		defaultHackathonReq(judgeAddrs, now.Add(time.Hour), now.Add(2*time.Hour), now.Add(3*time.Hour)))

	// --- 赞助阶段：两笔赞助共 1500 ---
	sponsorOne := newTestWallet(t)
	sponsorTwo := newTestWallet(t)
	depositFunds(t, r, sponsorOne, 1000)
	depositFunds(t, r, sponsorTwo, 500)
	sponsorPath := fmt.Sprintf("/api/v1/hackathons/%d/sponsor", hackID)
	resp := doJSON(t, r, "POST", sponsorPath, sponsorOne.token(t), gin.H{"amount": 1000})
	require.Equal(t, 0, resp.Code, resp.Msg)
	resp = doJSON(t, r, "POST", sponsorPath, sponsorTwo.token(t), gin.H{"amount": 500})
	require.Equal(t, 0, resp.Code, resp.Msg)

	// --- 开发阶段：三队报名、质押、提交 ---
	bse, bhs, bhe := buildingTimeline()
	setTimeline(t, hackID, bse, bhs, bhe)

	alice, teamAlpha := enrollTeam(t, r, hackID, "gh-60001", "secret-code-1", 85)
	bob, teamBeta := enrollTeam(t, r, hackID, "gh-60002", "secret-code-2", 90)
	carol, teamGamma := enrollTeam(t, r, hackID, "gh-60003", "secret-code-3", 60)

	// --- 赛后：评委打分 ---
	pse, phs, phe := postEventTimeline()
	setTimeline(t, hackID, pse, phs, phe)

	require.Equal(t, 0, judgeScore(t, r, hackID, judges[0], teamAlpha, 80).Code)
	require.Equal(t, 0, judgeScore(t, r, hackID, judges[1], teamAlpha, 85).Code)
	require.Equal(t, 0, judgeScore(t, r, hackID, judges[0], teamBeta, 95).Code)
	require.Equal(t, 0, judgeScore(t, r, hackID, judges[1], teamBeta, 90).Code)
	require.Equal(t, 0, judgeScore(t, r, hackID, judges[2], teamGamma, 50).Code)

	// --- 赛后：社区投票，禁止自投 ---
	votePath := fmt.Sprintf("/api/v1/hackathons/%d/votes", hackID)
	resp = doJSON(t, r, "POST", votePath, alice.token(t), gin.H{"team_id": teamBeta, "amount": 100})
	require.Equal(t, 0, resp.Code, resp.Msg)
	resp = doJSON(t, r, "POST", votePath, bob.token(t), gin.H{"team_id": teamAlpha, "amount": 100})
	require.Equal(t, 0, resp.Code, resp.Msg)
	resp = doJSON(t, r, "POST", votePath, carol.token(t), gin.H{"team_id": teamBeta, "amount": 30})
	require.Equal(t, 0, resp.Code, resp.Msg)

	// --- 终评冻结 ---
	resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/hackathons/%d/finalize", hackID),
		organizer.token(t), nil)
	require.Equal(t, 0, resp.Code, resp.Msg)

	// Beta: 0.40*185 + 0.35*130 + 0.25*90 = 142.0
	// Alpha: 0.40*165 + 0.35*100 + 0.25*85 = 122.25
	// Gamma: 0.40*50  + 0.35*0   + 0.25*60 = 35.0
	lbResp := doJSON(t, r, "GET", fmt.Sprintf("/api/v1/hackathons/%d/leaderboard", hackID), "", nil)
	require.Equal(t, 0, lbResp.Code, lbResp.Msg)
	var board []dto.LeaderboardEntryResp
	decodeData(t, lbResp, &board)
	require.Len(t, board, 3)
	assert.Equal(t, teamBeta, board[0].TeamID)
	assert.Equal(t, teamAlpha, board[1].TeamID)
	assert.Equal(t, teamGamma, board[2].TeamID)
	assert.InDelta(t, 142.0, board[0].FinalScore, 1e-9)
	assert.InDelta(t, 122.25, board[1].FinalScore, 1e-9)
	assert.InDelta(t, 35.0, board[2].FinalScore, 1e-9)

	// --- 发奖：奖池 1200，50/30/20 ---
	resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/hackathons/%d/rewards/distribute", hackID),
		organizer.token(t), nil)
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.EqualValues(t, 600, accountBalance(t, r, bob.addr))
	assert.EqualValues(t, 360, accountBalance(t, r, alice.addr))
	assert.EqualValues(t, 240, accountBalance(t, r, carol.addr))

	// --- 退押：本金 100 回到各自 staker ---
	refundPath := fmt.Sprintf("/api/v1/hackathons/%d/stake/refund", hackID)
	resp = doJSON(t, r, "POST", refundPath, bob.token(t), gin.H{"team_id": teamBeta})
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.EqualValues(t, 700, accountBalance(t, r, bob.addr))

	// --- 创建费结算：提交数未达门槛，费用留存 ---
	resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/hackathons/%d/fee/settle", hackID),
		organizer.token(t), nil)
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.EqualValues(t, 0, accountBalance(t, r, organizer.addr))

	// 终评冻结后黑客松进入终态
	statusResp := doJSON(t, r, "GET", fmt.Sprintf("/api/v1/hackathons/%d/status", hackID), "", nil)
	var status dto.HackathonStatusResp
	decodeData(t, statusResp, &status)
	assert.Equal(t, "finalized", status.Phase)
	assert.True(t, status.Finalized)
}
