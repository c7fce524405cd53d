// file: models/account.go
package models

import (
	"time"
)

// Account 平台托管账户，钱包地址即 hex 编码的 ed25519 公钥
// Balance 为托管余额，Nonce 为身份绑定签名的防重放计数
type Account struct {
	Wallet    string    `gorm:"primarykey;size:64" json:"wallet"`
	Balance   uint64    `gorm:"default:0" json:"balance"`
	Nonce     uint64    `gorm:"default:0" json:"nonce"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "hackhub_account"
}
