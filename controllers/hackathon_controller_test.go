// file: controllers/hackathon_controller_test.go
package controllers_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHackathonValidations(t *testing.T) {
	r := setupRouter(t)
	organizer := newTestWallet(t)
	_, judgeAddrs := fiveJudges(t)

	now := time.Now()
	base := defaultHackathonReq(judgeAddrs, now.Add(time.Hour), now.Add(2*time.Hour), now.Add(3*time.Hour))
	post := func(req dto.CreateHackathonReq) apiResp {
		return doJSON(t, r, "POST", "/api/v1/hackathons", organizer.token(t), req)
	}

	// 创建费低于平台下限
	req := base
	req.Fee = 999
	assert.Equal(t, 3302, post(req).Code)

	// 评委不足五人
	req = base
	req.Judges = judgeAddrs[:4]
	assert.Equal(t, 3303, post(req).Code)

	// 评委名单不允许重复钱包
	req = base
	req.Judges = append([]string{judgeAddrs[0]}, judgeAddrs[:4]...)
	assert.Equal(t, 3309, post(req).Code)

	// 时间窗口必须单调递增
	req = base
	req.SponsorshipEnd = base.HackStart
	assert.Equal(t, 3304, post(req).Code)
	req = base
	req.HackEnd = base.HackStart
	assert.Equal(t, 3305, post(req).Code)

	// 队伍数区间
	req = base
	req.MinTeams = 5
	req.MaxTeams = 3
	assert.Equal(t, 3306, post(req).Code)

	// 托管余额不足以缴纳创建费
	assert.Equal(t, 3307, post(base).Code)

	depositFunds(t, r, organizer, 1000)
	resp := post(base)
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.EqualValues(t, 0, accountBalance(t, r, organizer.addr))
}

func TestSponsorHackathonPhaseAndThreshold(t *testing.T) {
	r := setupRouter(t)
	organizer := newTestWallet(t)
	sponsor := newTestWallet(t)
	_, judgeAddrs := fiveJudges(t)

	now := time.Now()
	hackID := createHackathon(t, r, organizer,
		defaultHackathonReq(judgeAddrs, now.Add(time.Hour), now.Add(2*time.Hour), now.Add(3*time.Hour)))
	sponsorPath := fmt.Sprintf("/api/v1/hackathons/%d/sponsor", hackID)

	depositFunds(t, r, sponsor, 2000)

	// 低于本场单笔门槛 500
	resp := doJSON(t, r, "POST", sponsorPath, sponsor.token(t), gin.H{"amount": 499})
	assert.Equal(t, 3308, resp.Code)

	resp = doJSON(t, r, "POST", sponsorPath, sponsor.token(t), gin.H{"amount": 600})
	require.Equal(t, 0, resp.Code, resp.Msg)
	resp = doJSON(t, r, "POST", sponsorPath, sponsor.token(t), gin.H{"amount": 900})
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.EqualValues(t, 500, accountBalance(t, r, sponsor.addr))

	// 赞助总额累加，记录只追加
	sponsorsResp := doJSON(t, r, "GET", fmt.Sprintf("/api/v1/hackathons/%d/sponsors", hackID), "", nil)
	require.Equal(t, 0, sponsorsResp.Code, sponsorsResp.Msg)
	var data struct {
		Total    uint64               `json:"total_sponsorship_amount"`
		Sponsors []models.Sponsorship `json:"sponsors"`
	}
	decodeData(t, sponsorsResp, &data)
	assert.EqualValues(t, 1500, data.Total)
	require.Len(t, data.Sponsors, 2)

	// 赞助窗口关闭后拒绝
	bse, bhs, bhe := buildingTimeline()
	setTimeline(t, hackID, bse, bhs, bhe)
	resp = doJSON(t, r, "POST", sponsorPath, sponsor.token(t), gin.H{"amount": 500})
	assert.Equal(t, 4101, resp.Code)
}

func TestGetHackathonStatusTracksPhases(t *testing.T) {
	r := setupRouter(t)
	organizer := newTestWallet(t)
	_, judgeAddrs := fiveJudges(t)

	now := time.Now()
	hackID := createHackathon(t, r, organizer,
		defaultHackathonReq(judgeAddrs, now.Add(time.Hour), now.Add(2*time.Hour), now.Add(3*time.Hour)))
	statusPath := fmt.Sprintf("/api/v1/hackathons/%d/status", hackID)

	status := func() dto.HackathonStatusResp {
		resp := doJSON(t, r, "GET", statusPath, "", nil)
		require.Equal(t, 0, resp.Code, resp.Msg)
		var s dto.HackathonStatusResp
		decodeData(t, resp, &s)
		return s
	}

	assert.Equal(t, string(models.PhaseSponsorship), status().Phase)

	setTimeline(t, hackID, now.Add(-time.Minute), now.Add(time.Hour), now.Add(2*time.Hour))
	assert.Equal(t, string(models.PhaseRegistration), status().Phase)

	bse, bhs, bhe := buildingTimeline()
	setTimeline(t, hackID, bse, bhs, bhe)
	assert.Equal(t, string(models.PhaseBuilding), status().Phase)

	pse, phs, phe := postEventTimeline()
	setTimeline(t, hackID, pse, phs, phe)
	s := status()
	assert.Equal(t, string(models.PhasePostEvent), s.Phase)
	assert.False(t, s.Finalized)
}

func TestGetHackathonNotFound(t *testing.T) {
	r := setupRouter(t)

	resp := doJSON(t, r, "GET", "/api/v1/hackathons/99999", "", nil)
	assert.Equal(t, 3301, resp.Code)

	resp = doJSON(t, r, "GET", "/api/v1/hackathons/not-a-number", "", nil)
	assert.Equal(t, 1002, resp.Code)
}

func TestHackathonEventFeed(t *testing.T) {
	r := setupRouter(t)
	organizer := newTestWallet(t)
	sponsor := newTestWallet(t)
	_, judgeAddrs := fiveJudges(t)

	now := time.Now()
	hackID := createHackathon(t, r, organizer,
		defaultHackathonReq(judgeAddrs, now.Add(time.Hour), now.Add(2*time.Hour), now.Add(3*time.Hour)))

	depositFunds(t, r, sponsor, 500)
	resp := doJSON(t, r, "POST", fmt.Sprintf("/api/v1/hackathons/%d/sponsor", hackID),
		sponsor.token(t), gin.H{"amount": 500})
	require.Equal(t, 0, resp.Code, resp.Msg)

	eventsResp := doJSON(t, r, "GET", fmt.Sprintf("/api/v1/hackathons/%d/events", hackID), "", nil)
	require.Equal(t, 0, eventsResp.Code, eventsResp.Msg)
	var events []models.EventLog
	decodeData(t, eventsResp, &events)
	require.Len(t, events, 2)

	// 最新事件在前
	assert.Equal(t, models.EventSponsorshipReceived, events[0].EventType)
	assert.Equal(t, models.EventHackathonCreated, events[1].EventType)
}
