// file: controllers/helper_test.go
package controllers_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/GIT-Pushers/Devs-sub000/models"
	"github.com/GIT-Pushers/Devs-sub000/routes"
	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testWallet struct {
	priv ed25519.PrivateKey
	addr string
}

func newTestWallet(t *testing.T) testWallet {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return testWallet{priv: priv, addr: utils.WalletFromPublicKey(pub)}
}

func (w testWallet) sign(msg []byte) string {
	return hex.EncodeToString(ed25519.Sign(w.priv, msg))
}

func (w testWallet) token(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(w.addr)
	require.NoError(t, err)
	return token
}

// setupRouter 每个测试用独立的内存 sqlite 实例，共享全局 database.DB
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.DB = db
	database.RDB = nil
	database.MigrateTables()

	return routes.SetupRouter()
}

type apiResp struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) apiResp {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, resp apiResp, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// bindGitHub 走完整的绑定流程，绑定成功后钱包才可创建队伍
func bindGitHub(t *testing.T, r *gin.Engine, w testWallet, githubID string) {
	t.Helper()
	ts := time.Now().Unix()
	msg := utils.EncodeBindMessage(githubID, "gh-"+githubID, w.addr, 0, ts)
	resp := doJSON(t, r, "POST", "/api/v1/github/bind", w.token(t), gin.H{
		"github_id":     githubID,
		"github_handle": "gh-" + githubID,
		"nonce":         0,
		"timestamp":     ts,
		"signature":     w.sign(msg),
	})
	require.Equal(t, 0, resp.Code, resp.Msg)
}

func depositFunds(t *testing.T, r *gin.Engine, w testWallet, amount uint64) {
	t.Helper()
	resp := doJSON(t, r, "POST", "/api/v1/accounts/deposit", w.token(t), gin.H{"amount": amount})
	require.Equal(t, 0, resp.Code, resp.Msg)
}

func accountBalance(t *testing.T, r *gin.Engine, wallet string) uint64 {
	t.Helper()
	resp := doJSON(t, r, "GET", "/api/v1/accounts/"+wallet, "", nil)
	require.Equal(t, 0, resp.Code, resp.Msg)
	var account models.Account
	decodeData(t, resp, &account)
	return account.Balance
}

func createTeam(t *testing.T, r *gin.Engine, w testWallet, joinCode string) uint32 {
	t.Helper()
	resp := doJSON(t, r, "POST", "/api/v1/teams", w.token(t), gin.H{
		"metadata_uri": "ipfs://team-meta",
		"join_code":    joinCode,
	})
	require.Equal(t, 0, resp.Code, resp.Msg)
	var data struct {
		ID uint32 `json:"id"`
	}
	decodeData(t, resp, &data)
	return data.ID
}

func fiveJudges(t *testing.T) ([]testWallet, []string) {
	t.Helper()
	judges := make([]testWallet, 5)
	addrs := make([]string, 5)
	for i := range judges {
		judges[i] = newTestWallet(t)
		addrs[i] = judges[i].addr
	}
	return judges, addrs
}

// createHackathon 以给定时间线创建一场黑客松，组织者账户自动入金
func createHackathon(t *testing.T, r *gin.Engine, organizer testWallet, req dto.CreateHackathonReq) uint {
	t.Helper()
	depositFunds(t, r, organizer, req.Fee)
	resp := doJSON(t, r, "POST", "/api/v1/hackathons", organizer.token(t), req)
	require.Equal(t, 0, resp.Code, resp.Msg)
	var data struct {
		ID uint `json:"id"`
	}
	decodeData(t, resp, &data)
	return data.ID
}

func defaultHackathonReq(judgeAddrs []string, sponsorshipEnd, hackStart, hackEnd time.Time) dto.CreateHackathonReq {
	return dto.CreateHackathonReq{
		MetadataURI:             "ipfs://hack-meta",
		SponsorshipEnd:          sponsorshipEnd,
		HackStart:               hackStart,
		HackEnd:                 hackEnd,
		StakeAmount:             100,
		MinTeams:                1,
		MaxTeams:                10,
		Fee:                     1000,
		MinSponsorshipThreshold: 500,
		Judges:                  judgeAddrs,
	}
}

// setTimeline 直接改写时间戳，把黑客松推进到目标阶段
func setTimeline(t *testing.T, hackathonID uint, sponsorshipEnd, hackStart, hackEnd time.Time) {
	t.Helper()
	err := database.DB.Model(&models.Hackathon{}).Where("id = ?", hackathonID).
		Updates(map[string]interface{}{
			"sponsorship_end": sponsorshipEnd,
			"hack_start":      hackStart,
			"hack_end":        hackEnd,
		}).Error
	require.NoError(t, err)
}

// 常用时间线
func buildingTimeline() (time.Time, time.Time, time.Time) {
	now := time.Now()
	return now.Add(-2 * time.Hour), now.Add(-1 * time.Hour), now.Add(1 * time.Hour)
}

func postEventTimeline() (time.Time, time.Time, time.Time) {
	now := time.Now()
	return now.Add(-3 * time.Hour), now.Add(-2 * time.Hour), now.Add(-1 * time.Hour)
}
