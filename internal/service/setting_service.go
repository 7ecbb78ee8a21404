package service

import (
	"context"
	"fmt"

	"github.com/fernet/fernet-go"
	"github.com/wheeltracker/backend/internal/repository"
)

// secretSettingKeys lists settings whose values are encrypted at rest when a
// settings secret is configured.
var secretSettingKeys = map[string]bool{
	"polygon_api_key": true,
}

// SettingService handles application settings. Secret values (API keys) are stored
// fernet-encrypted when a key is configured; without one they are stored in plain text.
type SettingService struct {
	settingRepo *repository.SettingRepository
	key         *fernet.Key
}

// NewSettingService creates a new SettingService. The secret, when non-empty, must be
// a base64-encoded 32-byte fernet key.
func NewSettingService(settingRepo *repository.SettingRepository, secret string) (*SettingService, error) {
	s := &SettingService{settingRepo: settingRepo}

	if secret != "" {
		key, err := fernet.DecodeKey(secret)
		if err != nil {
			return nil, fmt.Errorf("failed to decode settings secret: %w", err)
		}
		s.key = key
	}

	return s, nil
}

// GetSetting retrieves a setting value, decrypting secret values when needed.
func (s *SettingService) GetSetting(key string) (string, error) {
	value, err := s.settingRepo.Get(key)
	if err != nil {
		return "", err
	}
	return s.reveal(key, value), nil
}

// SetSetting stores a setting value, encrypting secret values when a key is configured.
func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	if s.key != nil && secretSettingKeys[key] && value != "" {
		encrypted, err := fernet.EncryptAndSign([]byte(value), s.key)
		if err != nil {
			return fmt.Errorf("failed to encrypt setting: %w", err)
		}
		value = string(encrypted)
	}

	return s.settingRepo.Set(ctx, key, value)
}

// GetAllSettings retrieves every setting with secret values decrypted.
func (s *SettingService) GetAllSettings() (map[string]string, error) {
	settings, err := s.settingRepo.All()
	if err != nil {
		return nil, err
	}

	for key, value := range settings {
		settings[key] = s.reveal(key, value)
	}

	return settings, nil
}

// reveal decrypts a stored secret value. Values that do not verify as fernet tokens
// are returned unchanged, so plaintext values written before encryption was enabled
// still read back correctly.
func (s *SettingService) reveal(key, value string) string {
	if s.key == nil || !secretSettingKeys[key] || value == "" {
		return value
	}

	plain := fernet.VerifyAndDecrypt([]byte(value), 0, []*fernet.Key{s.key})
	if plain == nil {
		return value
	}
	return string(plain)
}
