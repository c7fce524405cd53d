// file: routes/router.go
package routes

import (
	"github.com/GIT-Pushers/Devs-sub000/controllers"
	"github.com/GIT-Pushers/Devs-sub000/middlewares"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 钱包登录 ---
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/challenge", controllers.RequestChallenge)
			authRoutes.POST("/login", controllers.Login)
		}

		// --- GitHub 身份绑定 ---
		githubRoutes := apiV1.Group("/github")
		{
			githubRoutes.GET("/nonce/:wallet", controllers.GetNonce)
			githubRoutes.GET("/verified/:wallet", controllers.IsVerified)
			githubRoutes.POST("/bind", middlewares.JWTAuthMiddleware(), controllers.BindGitHub)
		}

		// --- 队伍 ---
		teamRoutes := apiV1.Group("/teams")
		{
			teamRoutes.GET("/:id", controllers.GetTeam)
			teamRoutes.POST("", middlewares.JWTAuthMiddleware(), controllers.CreateTeam)
			teamRoutes.POST("/:id/join", middlewares.JWTAuthMiddleware(), controllers.JoinTeam)
		}
		apiV1.GET("/users/:wallet/teams", controllers.GetUserTeams)

		// --- 黑客松生命周期 ---
		hackPublic := apiV1.Group("/hackathons")
		{
			hackPublic.GET("", controllers.ListHackathons)
			hackPublic.GET("/:id", controllers.GetHackathon)
			hackPublic.GET("/:id/status", controllers.GetHackathonStatus)
			hackPublic.GET("/:id/sponsors", controllers.GetSponsors)
			hackPublic.GET("/:id/teams", controllers.GetHackathonTeams)
			hackPublic.GET("/:id/registrations/:team_id", controllers.GetTeamRegistration)
			hackPublic.GET("/:id/judges/:wallet", controllers.IsJudgeQuery)
			hackPublic.GET("/:id/voting-token/:wallet", controllers.GetVotingToken)
			hackPublic.GET("/:id/leaderboard", controllers.GetLeaderboard)
			hackPublic.GET("/:id/events", controllers.GetHackathonEvents)
		}
		hackAuth := apiV1.Group("/hackathons")
		hackAuth.Use(middlewares.JWTAuthMiddleware())
		{
			hackAuth.POST("", controllers.CreateHackathon)
			hackAuth.POST("/:id/sponsor", controllers.SponsorHackathon)
			hackAuth.POST("/:id/register", controllers.RegisterTeam)
			hackAuth.POST("/:id/stake", controllers.StakeForTeam)
			hackAuth.POST("/:id/submit", controllers.SubmitProject)
			hackAuth.POST("/:id/scores/judge", controllers.SubmitJudgeScore)
			hackAuth.POST("/:id/votes", controllers.VoteForTeam)
			hackAuth.POST("/:id/finalize", controllers.CalculateFinalScores)
			hackAuth.POST("/:id/rewards/distribute", controllers.DistributeRewards)
			hackAuth.POST("/:id/stake/refund", controllers.RefundStake)
			hackAuth.POST("/:id/fee/settle", controllers.SettleCreationFee)
		}

		// --- 托管账户 ---
		accountRoutes := apiV1.Group("/accounts")
		{
			accountRoutes.GET("/:wallet", controllers.GetAccount)
			accountRoutes.POST("/deposit", middlewares.JWTAuthMiddleware(), controllers.Deposit)
		}
	}

	return r
}
