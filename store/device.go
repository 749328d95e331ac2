package store

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/jinzhu/gorm"

	"github.com/healthkernel/healthkernel-api/schema"
)

// CoreStore - device registry operations backed by Postgres
type CoreStore interface {
	RegisterDevice(deviceID, deviceKey, timezone string) (*schema.Device, error)
	GetDevice(deviceID string) (*schema.Device, error)
	VerifyDeviceKey(deviceID, deviceKey string) (*schema.Device, error)
	PingORM() error
}

type coreStore struct {
	ormDB *gorm.DB
}

// NewCoreStore - return device registry operations
func NewCoreStore(ormDB *gorm.DB) CoreStore {
	return &coreStore{ormDB: ormDB}
}

func (s *coreStore) PingORM() error {
	return s.ormDB.DB().Ping()
}

func hashDeviceKey(key string) string {
	digest := sha256.Sum256([]byte(key))
	return hex.EncodeToString(digest[:])
}

func (s *coreStore) RegisterDevice(deviceID, deviceKey, timezone string) (*schema.Device, error) {
	device := schema.Device{
		DeviceID: deviceID,
		KeyHash:  hashDeviceKey(deviceKey),
		Timezone: timezone,
	}
	if err := s.ormDB.Create(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *coreStore) GetDevice(deviceID string) (*schema.Device, error) {
	var device schema.Device
	if err := s.ormDB.Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// VerifyDeviceKey returns the device when the presented key matches its
// stored hash; gorm.ErrRecordNotFound covers both unknown devices and bad
// keys so callers cannot distinguish the two.
func (s *coreStore) VerifyDeviceKey(deviceID, deviceKey string) (*schema.Device, error) {
	device, err := s.GetDevice(deviceID)
	if err != nil {
		return nil, err
	}
	presented := hashDeviceKey(deviceKey)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(device.KeyHash)) != 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return device, nil
}
