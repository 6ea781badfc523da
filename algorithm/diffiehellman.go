package algorithm

import (
	"crypto/sha256"
	"math/big"
)

// публичное значение стороны: g^secret mod p
func PublicValue(g, secret, p *big.Int) *big.Int {
	return ModPow(g, secret, p)
}

// общий секрет (otherPublic ^ secret) mod p; обе стороны считают его
// независимо и получают одно и то же значение
func SharedSecret(otherPublic, secret, p *big.Int) *big.Int {
	return ModPow(otherPublic, secret, p)
}

// отпечаток общего секрета через SHA-256
func HashSharedKey(sharedKey *big.Int) []byte {
	hash := sha256.New()
	hash.Write(sharedKey.Bytes())
	return hash.Sum(nil)
}
