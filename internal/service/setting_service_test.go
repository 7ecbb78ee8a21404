package service_test

import (
	"context"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/wheeltracker/backend/internal/repository"
	"github.com/wheeltracker/backend/internal/service"
	"github.com/wheeltracker/backend/internal/testutil"
)

// TestSettingService tests the settings store with and without encryption.
//
// WHY: Secret settings hold API keys. They must round-trip through encryption
// when a key is configured and never be stored in plain text, while plain
// settings stay readable either way.
func TestSettingService(t *testing.T) {
	t.Run("round-trips plain settings without a key", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db)

		// Execute
		if err := svc.SetSetting(context.Background(), "theme", "light"); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}
		value, err := svc.GetSetting("theme")

		// Assert
		if err != nil {
			t.Fatalf("GetSetting() returned unexpected error: %v", err)
		}
		if value != "light" {
			t.Errorf("Expected light, got %q", value)
		}
	})

	t.Run("encrypts secret settings at rest", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		settingRepo := repository.NewSettingRepository(db)

		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}

		svc, err := service.NewSettingService(settingRepo, key.Encode())
		if err != nil {
			t.Fatalf("NewSettingService() returned unexpected error: %v", err)
		}

		// Execute
		if err := svc.SetSetting(context.Background(), "polygon_api_key", "super-secret"); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}

		// Assert: stored value is a fernet token, not the plaintext
		stored, err := settingRepo.Get("polygon_api_key")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if stored == "super-secret" {
			t.Error("Expected encrypted value at rest, got plaintext")
		}

		// Reading through the service decrypts
		value, err := svc.GetSetting("polygon_api_key")
		if err != nil {
			t.Fatalf("GetSetting() returned unexpected error: %v", err)
		}
		if value != "super-secret" {
			t.Errorf("Expected decrypted value, got %q", value)
		}
	})

	t.Run("returns plaintext values written before encryption was enabled", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		settingRepo := repository.NewSettingRepository(db)

		if err := settingRepo.Set(context.Background(), "polygon_api_key", "legacy-plain"); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		svc, err := service.NewSettingService(settingRepo, key.Encode())
		if err != nil {
			t.Fatalf("NewSettingService() returned unexpected error: %v", err)
		}

		// Execute
		value, err := svc.GetSetting("polygon_api_key")

		// Assert
		if err != nil {
			t.Fatalf("GetSetting() returned unexpected error: %v", err)
		}
		if value != "legacy-plain" {
			t.Errorf("Expected legacy plaintext value, got %q", value)
		}
	})
}
