// file: models/binding.go
package models

import (
	"time"
)

// GitHubBinding GitHub 账号与钱包的永久绑定关系
// github_id 与 wallet 双向唯一：一个账号至多绑定一个钱包，一个钱包至多持有一条绑定
// 不存在解绑操作
type GitHubBinding struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	GitHubID     string    `gorm:"column:github_id;size:64;unique;not null" json:"github_id"`
	GitHubHandle string    `gorm:"column:github_handle;size:64;not null" json:"github_handle"`
	Wallet       string    `gorm:"size:64;unique;not null" json:"wallet"`
	Nonce        uint64    `gorm:"not null" json:"nonce"`
	CreatedAt    time.Time `json:"created_at"`
}

func (GitHubBinding) TableName() string {
	return "hackhub_github_binding"
}

// AuthChallenge 钱包登录用一次性挑战，10 分钟内有效，使用后删除
type AuthChallenge struct {
	ID        uint      `gorm:"primarykey"`
	Wallet    string    `gorm:"size:64;not null;index"`
	Challenge string    `gorm:"size:64;unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (AuthChallenge) TableName() string {
	return "hackhub_auth_challenge"
}
