// file: utils/joincode.go
package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// MinJoinCodeLength 入队口令最短长度
const MinJoinCodeLength = 8

// HashJoinCode 对入队口令做 bcrypt 哈希，原文不落库
func HashJoinCode(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckJoinCode 校验口令与哈希是否匹配
func CheckJoinCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
