// file: utils/signature.go
package utils

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"
)

// 签名域分隔前缀，不同用途的消息不可互换
const (
	AuthLoginDomain  = "hackhub/v1/auth-login"
	GitHubBindDomain = "hackhub/v1/github-bind"
)

// EncodeLoginMessage 登录挑战的规范编码
func EncodeLoginMessage(challenge, wallet string) []byte {
	return []byte(strings.Join([]string{AuthLoginDomain, challenge, wallet}, "|"))
}

// EncodeBindMessage 身份绑定声明五元组的规范编码
// 字段顺序与分隔符固定，客户端与服务端必须逐字节一致
func EncodeBindMessage(githubID, githubHandle, wallet string, nonce uint64, timestamp int64) []byte {
	return []byte(fmt.Sprintf("%s|%s|%s|%s|%d|%d",
		GitHubBindDomain, githubID, githubHandle, wallet, nonce, timestamp))
}

// VerifyWalletSignature 校验签名是否由 wallet 对 message 签出
// 钱包地址即 hex 编码的 ed25519 公钥
func VerifyWalletSignature(wallet string, message []byte, sigHex string) bool {
	pub, err := hex.DecodeString(wallet)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}

// WalletFromPublicKey 由公钥推导钱包地址
func WalletFromPublicKey(pub ed25519.PublicKey) string {
	return hex.EncodeToString(pub)
}
