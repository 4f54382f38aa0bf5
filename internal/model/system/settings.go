package system

import (
	"time"
)

// SettingsID settings 集合单例文档的固定ID
const SettingsID = "system"

// Settings 站点设置（单例文档）
type Settings struct {
	ID                           string    `bson:"_id" json:"-"`
	SiteName                     string    `bson:"site_name" json:"site_name"`
	RegistrationRequiresApproval bool      `bson:"registration_requires_approval" json:"registration_requires_approval"`
	UpdatedBy                    string    `bson:"updated_by,omitempty" json:"-"`
	UpdatedAt                    time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultSettings 默认站点设置
func DefaultSettings() *Settings {
	return &Settings{
		ID:                           SettingsID,
		SiteName:                     "Agora",
		RegistrationRequiresApproval: true,
		UpdatedAt:                    time.Now(),
	}
}
