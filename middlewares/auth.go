// file: middlewares/auth.go
package middlewares

import (
	"strings"

	"github.com/GIT-Pushers/Devs-sub000/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware 验证会话 Token，并把调用方钱包地址放入上下文
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, 4001, "请求头中 Authorization 为空")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, 4002, "Authorization 格式有误")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, 4003, "无效的 Token")
			c.Abort()
			return
		}
		c.Set("wallet", claims.Wallet)
		c.Next()
	}
}

// CallerWallet 从上下文取出已验证的调用方钱包地址
func CallerWallet(c *gin.Context) string {
	walletAny, _ := c.Get("wallet")
	wallet, _ := walletAny.(string)
	return wallet
}
