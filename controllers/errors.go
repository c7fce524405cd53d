// file: controllers/errors.go
package controllers

import "errors"

// 事务内部使用的哨兵错误，用于把业务拒绝从数据库错误中区分出来
var (
	errInvalidNonce        = errors.New("invalid nonce")
	errBadSignature        = errors.New("bad signature")
	errGitHubLinked        = errors.New("github already linked")
	errWalletBound         = errors.New("wallet already bound")
	errInsufficientBalance = errors.New("insufficient balance")
)
