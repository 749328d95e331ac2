package schema

import "time"

// Device is a registered telemetry source. Rows live in Postgres; the key
// hash backs JWT issuance on /api/auth.
type Device struct {
	DeviceID  string    `json:"device_id" gorm:"primary_key"`
	KeyHash   string    `json:"-" gorm:"column:key_hash"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Device) TableName() string {
	return "devices"
}
