// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 30000
	keyLen           = 32
	tagLen           = 16
	ivLen            = 12
	versionByte      = '1'
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	mu  sync.RWMutex
	key []byte
}

// NewKeyChain constructs a [KeyChain] without a key. Decrypt fails until
// DeriveKey is called.
func NewKeyChain() KeyChain {
	return &keyChain{}
}

func (k *keyChain) Enabled() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.key != nil
}

// DeriveKey implements [KeyChain].
func (k *keyChain) DeriveKey(password, userIden string) {
	key := pbkdf2.Key([]byte(password), []byte(userIden), pbkdf2Iterations, keyLen, sha256.New)

	k.mu.Lock()
	k.key = key
	k.mu.Unlock()
}

// Decrypt implements [KeyChain].
func (k *keyChain) Decrypt(ciphertextB64 string) ([]byte, error) {
	gcm, err := k.aead()
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecryption, err)
	}
	if len(raw) < 1+tagLen+ivLen {
		return nil, fmt.Errorf("%w: payload too short", ErrDecryption)
	}
	if raw[0] != versionByte {
		return nil, fmt.Errorf("%w: unknown version %q", ErrDecryption, raw[0])
	}

	tag := raw[1 : 1+tagLen]
	iv := raw[1+tagLen : 1+tagLen+ivLen]
	body := raw[1+tagLen+ivLen:]

	sealed := make([]byte, 0, len(body)+tagLen)
	sealed = append(sealed, body...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

func (k *keyChain) aead() (cipher.AEAD, error) {
	k.mu.RLock()
	key := k.key
	k.mu.RUnlock()

	if key == nil {
		return nil, fmt.Errorf("%w: encryption key not set", ErrDecryption)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
